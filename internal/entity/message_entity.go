package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id      uuid.UUID
	ChatId  uuid.UUID
	Chat    *Chat
	Content string
	// ImagePath is a path relative to the media root; empty when the
	// message carries no image.
	ImagePath string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
	DeletedAt *time.Time
}
