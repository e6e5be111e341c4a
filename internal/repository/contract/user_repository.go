package contract

import (
	"context"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	CreateInBatches(ctx context.Context, users []*entity.User, batchSize int) error
	// Delete removes the row physically; chats and their messages cascade.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
