package model

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`
	User   *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	// Soft delete is an explicit flag, not gorm.DeletedAt: deleted rows
	// must stay visible in admin listings.
	IsDeleted bool `gorm:"not null;default:false;index"`
	DeletedAt *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Chat) TableName() string {
	return "chats"
}
