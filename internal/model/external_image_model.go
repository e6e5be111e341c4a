package model

import (
	"time"

	"github.com/google/uuid"
)

type ExternalImage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExternalId int       `gorm:"uniqueIndex;not null"`
	URL        string    `gorm:"type:text;not null"`
	ImagePath  string    `gorm:"type:text"`
	WasSent    bool      `gorm:"not null;default:false;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ExternalImage) TableName() string {
	return "external_images"
}
