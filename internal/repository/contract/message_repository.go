package contract

import (
	"context"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	CreateInBatches(ctx context.Context, messages []*entity.Message, batchSize int) error
	SoftDeleteByIDs(ctx context.Context, ids []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
