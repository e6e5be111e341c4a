package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatListFilter narrows the chat changelist. Nil fields are ignored.
type ChatListFilter struct {
	UserId    *uuid.UUID
	IsDeleted *bool
}

// MessageListFilter narrows the message changelist.
type MessageListFilter struct {
	ChatId    *uuid.UUID
	IsDeleted *bool
}

// DeleteSelectedRequest carries the bulk soft-delete action's targets.
type DeleteSelectedRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type ChatListItem struct {
	Id        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	IsDeleted bool       `json:"is_deleted"`
}

type ListChatsResponse struct {
	Items   []ChatListItem `json:"items"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

type MessageListItem struct {
	Id        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Content   string     `json:"content"`
	ImagePath string     `json:"image_path,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	IsDeleted bool       `json:"is_deleted"`
}

type ListMessagesResponse struct {
	Items   []MessageListItem `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

type TriggerIngestRequest struct {
	Provider string `json:"provider" validate:"required"`
}
