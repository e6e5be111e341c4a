package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	// Permissions are capability strings of the form "<app>.<action>_<module>",
	// e.g. "chat.change_message".
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
