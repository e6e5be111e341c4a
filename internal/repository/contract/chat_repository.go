package contract

import (
	"context"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	CreateInBatches(ctx context.Context, chats []*entity.Chat, batchSize int) error
	// SoftDeleteByIDs sets the is_deleted flag; rows are retained.
	SoftDeleteByIDs(ctx context.Context, ids []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
