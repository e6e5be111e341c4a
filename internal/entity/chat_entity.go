package entity

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	User      *User
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
	DeletedAt *time.Time
}
