package imagecache

import (
	"context"
	"encoding/json"
	"time"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Capacity is the maximum number of serialized images held per key.
	Capacity = 30
	// TTL is reset unconditionally on every full refill.
	TTL = time.Hour
	// RefillThreshold is the level below which a refill should be triggered.
	RefillThreshold = 5
)

// CachedImage is the serialized form pushed onto the redis list.
type CachedImage struct {
	Id         uuid.UUID `json:"id"`
	ExternalId int       `json:"external_id"`
	URL        string    `json:"url"`
	ImagePath  string    `json:"image_path"`
}

// ImageSource is the direct-query fallback behind the cache. Every read
// path falls back to it, so a stale or empty cache only costs latency.
type ImageSource interface {
	ListUnsent(ctx context.Context, limit int) ([]*entity.ExternalImage, error)
	FirstUnsent(ctx context.Context) (*entity.ExternalImage, error)
}

// redisCommands is the slice of the redis client the cache needs.
// Satisfied by *redis.Client; faked in tests.
type redisCommands interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	LPop(ctx context.Context, key string) *redis.StringCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Cache struct {
	rdb    redisCommands
	source ImageSource
	logger logger.ILogger
}

func New(rdb redisCommands, source ImageSource, log logger.ILogger) *Cache {
	return &Cache{
		rdb:    rdb,
		source: source,
		logger: log,
	}
}

// Refill queries up to Capacity unsent images ordered by external id,
// pushes each onto the tail of the list and resets the expiry to TTL.
// The TTL is extended even when some images were already enqueued.
func (c *Cache) Refill(ctx context.Context, key string) error {
	images, err := c.source.ListUnsent(ctx, Capacity)
	if err != nil {
		return err
	}

	for _, img := range images {
		payload, err := json.Marshal(fromEntity(img))
		if err != nil {
			return err
		}
		if err := c.rdb.RPush(ctx, key, payload).Err(); err != nil {
			return err
		}
	}

	if err := c.rdb.Expire(ctx, key, TTL).Err(); err != nil {
		return err
	}

	c.logger.Info("imagecache", "Cache refilled", map[string]interface{}{
		"key":   key,
		"count": len(images),
	})
	return nil
}

// Consume resolves one unsent image. The cache is cleared first; if a
// key was supplied and an entry survives, the head is popped, otherwise
// the direct first-unsent query serves the read. Returns (nil, nil)
// when no image exists at all.
func (c *Cache) Consume(ctx context.Context, key string) (*CachedImage, error) {
	if key == "" {
		return c.firstUnsent(ctx)
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("imagecache", "Redis unavailable, falling back to direct query", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return c.firstUnsent(ctx)
	}

	entries, err := c.rdb.LRange(ctx, key, 0, 0).Result()
	if err != nil || len(entries) == 0 {
		return c.firstUnsent(ctx)
	}

	var img CachedImage
	if err := json.Unmarshal([]byte(entries[0]), &img); err != nil {
		c.logger.Warn("imagecache", "Discarding malformed cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return c.firstUnsent(ctx)
	}

	if err := c.rdb.LPop(ctx, key).Err(); err != nil {
		c.logger.Warn("imagecache", "Failed to pop cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return &img, nil
}

// Len reports the number of cached entries under key.
func (c *Cache) Len(ctx context.Context, key string) (int64, error) {
	return c.rdb.LLen(ctx, key).Result()
}

func (c *Cache) firstUnsent(ctx context.Context) (*CachedImage, error) {
	img, err := c.source.FirstUnsent(ctx)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}
	cached := fromEntity(img)
	return &cached, nil
}

func fromEntity(img *entity.ExternalImage) CachedImage {
	return CachedImage{
		Id:         img.Id,
		ExternalId: img.ExternalId,
		URL:        img.URL,
		ImagePath:  img.ImagePath,
	}
}
