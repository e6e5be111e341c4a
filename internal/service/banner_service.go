package service

import (
	"context"
	"errors"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/internal/repository/specification"
	"banner-chat-be/internal/repository/unitofwork"
	"banner-chat-be/pkg/imagecache"

	"github.com/google/uuid"
)

var (
	// ErrNoImageAvailable aborts the broadcast before any message is created.
	ErrNoImageAvailable = errors.New("no new image available to send in banners")
	// ErrSendBannersFailed is the single generic failure surfaced to the
	// admin; the underlying cause is only logged.
	ErrSendBannersFailed = errors.New("error sending banners")
)

// BannerImageCache is the prefetch cache surface the workflow needs.
type BannerImageCache interface {
	Consume(ctx context.Context, key string) (*imagecache.CachedImage, error)
	Len(ctx context.Context, key string) (int64, error)
}

// RefillPublisher hands the refill off to the supervised consumer.
type RefillPublisher interface {
	PublishRefill(ctx context.Context, cacheKey string) error
}

type IBannerService interface {
	SendBanners(ctx context.Context, content string) error
}

type bannerService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      BannerImageCache
	refill     RefillPublisher
	cacheKey   string
	batchSize  int
	logger     logger.ILogger
}

func NewBannerService(
	uowFactory unitofwork.RepositoryFactory,
	cache BannerImageCache,
	refill RefillPublisher,
	cacheKey string,
	batchSize int,
	log logger.ILogger,
) IBannerService {
	return &bannerService{
		uowFactory: uowFactory,
		cache:      cache,
		refill:     refill,
		cacheKey:   cacheKey,
		batchSize:  batchSize,
		logger:     log,
	}
}

// SendBanners creates one message carrying content and the consumed
// image's file path in every active chat, then marks the image sent.
// No transaction spans the bulk insert and the flag update; messages
// created before a failure are not rolled back.
func (s *bannerService) SendBanners(ctx context.Context, content string) error {
	image, err := s.cache.Consume(ctx, s.cacheKey)
	if err != nil {
		s.logger.Error("banner", "Error resolving banner image", map[string]interface{}{
			"error": err.Error(),
		})
		return ErrSendBannersFailed
	}
	if image == nil {
		return ErrNoImageAvailable
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return s.fail(err)
	}

	messages := make([]*entity.Message, len(chats))
	for i, chat := range chats {
		messages[i] = &entity.Message{
			Id:        uuid.New(),
			ChatId:    chat.Id,
			Content:   content,
			ImagePath: image.ImagePath,
		}
	}

	if len(messages) > 0 {
		if err := uow.MessageRepository().CreateInBatches(ctx, messages, s.batchSize); err != nil {
			return s.fail(err)
		}
	}

	if err := uow.ExternalImageRepository().MarkSent(ctx, image.Id); err != nil {
		return s.fail(err)
	}

	if length, err := s.cache.Len(ctx, s.cacheKey); err == nil && length < imagecache.RefillThreshold {
		if err := s.refill.PublishRefill(ctx, s.cacheKey); err != nil {
			// Fire-and-forget: refill failures are never surfaced to the admin.
			s.logger.Warn("banner", "Failed to publish cache refill", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.logger.Info("banner", "Banners sent", map[string]interface{}{
		"chats":             len(chats),
		"image_external_id": image.ExternalId,
	})
	return nil
}

func (s *bannerService) fail(err error) error {
	s.logger.Error("banner", "Error performing send banner action", map[string]interface{}{
		"error": err.Error(),
	})
	return ErrSendBannersFailed
}
