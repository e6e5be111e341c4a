package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExternalImage is one photo ingested from a third-party provider.
// ExternalId is the provider-assigned id and the de-duplication key.
type ExternalImage struct {
	Id         uuid.UUID
	ExternalId int
	URL        string
	// ImagePath is the locally cached copy, relative to the media root.
	// Empty when the eager download failed or has not run.
	ImagePath string
	WasSent   bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
