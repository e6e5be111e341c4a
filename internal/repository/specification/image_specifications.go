package specification

import "gorm.io/gorm"

// ByExternalID filters ExternalImage rows by the provider-assigned id.
type ByExternalID struct {
	ExternalID int
}

func (s ByExternalID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("external_id = ?", s.ExternalID)
}

// NotSent keeps images that have not been consumed by a banner yet.
type NotSent struct{}

func (s NotSent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("was_sent = ?", false)
}
