package service

import (
	"context"
	"testing"
	"time"

	"banner-chat-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

type refillerFunc func(ctx context.Context, key string) error

func (f refillerFunc) Refill(ctx context.Context, key string) error {
	return f(ctx, key)
}

func TestCacheRefill_RoundTrip(t *testing.T) {
	// Persistent delivery removes the publish/subscribe ordering race.
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{Persistent: true},
		watermill.NopLogger{},
	)

	refilled := make(chan string, 1)
	svc := NewCacheRefillService(pubSub, refillerFunc(func(ctx context.Context, key string) error {
		refilled <- key
		return nil
	}), logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go svc.Consume(ctx)

	assert.NoError(t, svc.PublishRefill(ctx, "available_banner_images"))

	select {
	case key := <-refilled:
		assert.Equal(t, "available_banner_images", key)
	case <-time.After(2 * time.Second):
		t.Fatal("refill was never consumed")
	}
}
