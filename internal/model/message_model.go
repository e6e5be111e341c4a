package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Chat      *Chat     `gorm:"foreignKey:ChatId;constraint:OnDelete:CASCADE"`
	Content   string    `gorm:"type:text;not null"`
	ImagePath string    `gorm:"type:text"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	DeletedAt *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Message) TableName() string {
	return "messages"
}
