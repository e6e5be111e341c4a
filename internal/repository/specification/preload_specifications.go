package specification

import "gorm.io/gorm"

// WithUser preloads the owning user (chat listings show the username).
type WithUser struct{}

func (s WithUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}

// WithChatUser preloads the chat and its owning user for message rows.
type WithChatUser struct{}

func (s WithChatUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Chat").Preload("Chat.User")
}
