package service

import (
	"context"
	"encoding/json"

	"banner-chat-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const refillTopic = "banner.cache.refill"

// CacheRefiller is implemented by imagecache.Cache.
type CacheRefiller interface {
	Refill(ctx context.Context, key string) error
}

type refillRequest struct {
	CacheKey string `json:"cache_key"`
}

// ICacheRefillService decouples the banner workflow from the refill
// work: the workflow publishes a request and moves on; the consumer
// goroutine performs the refill and owns its error logging.
type ICacheRefillService interface {
	PublishRefill(ctx context.Context, cacheKey string) error
	Consume(ctx context.Context) error
}

type cacheRefillService struct {
	pubSub *gochannel.GoChannel
	cache  CacheRefiller
	logger logger.ILogger
}

func NewCacheRefillService(pubSub *gochannel.GoChannel, cache CacheRefiller, log logger.ILogger) ICacheRefillService {
	return &cacheRefillService{
		pubSub: pubSub,
		cache:  cache,
		logger: log,
	}
}

func (s *cacheRefillService) PublishRefill(ctx context.Context, cacheKey string) error {
	payload, err := json.Marshal(refillRequest{CacheKey: cacheKey})
	if err != nil {
		return err
	}
	return s.pubSub.Publish(refillTopic, message.NewMessage(watermill.NewUUID(), payload))
}

func (s *cacheRefillService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, refillTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var req refillRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			s.logger.Error("refill", "Malformed refill request", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		if err := s.cache.Refill(ctx, req.CacheKey); err != nil {
			s.logger.Error("refill", "Cache refill failed", map[string]interface{}{
				"cache_key": req.CacheKey,
				"error":     err.Error(),
			})
		}
		msg.Ack()
	}
	return nil
}
