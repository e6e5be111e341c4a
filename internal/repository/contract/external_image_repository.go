package contract

import (
	"context"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExternalImageRepository interface {
	Create(ctx context.Context, image *entity.ExternalImage) error
	ExistsByExternalID(ctx context.Context, externalID int) (bool, error)
	// MarkSent flips was_sent to true by primary key.
	MarkSent(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExternalImage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExternalImage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
