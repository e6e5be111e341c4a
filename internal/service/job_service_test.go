package service

import (
	"context"
	"errors"
	"testing"

	"banner-chat-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type fakeJobPublisher struct {
	subjects []string
	payloads []interface{}
	err      error
}

func (p *fakeJobPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestTriggerIngest(t *testing.T) {
	pub := &fakeJobPublisher{}
	svc := NewJobService(pub, logger.NewNoopLogger())

	err := svc.TriggerIngest(context.Background(), "sling_academy")
	assert.NoError(t, err)
	assert.Equal(t, []string{"jobs.ingest.sling_academy"}, pub.subjects)

	payload, ok := pub.payloads[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "sling_academy", payload["provider"])
}

func TestTriggerIngest_PublishFailure(t *testing.T) {
	pub := &fakeJobPublisher{err: errors.New("nats down")}
	svc := NewJobService(pub, logger.NewNoopLogger())

	err := svc.TriggerIngest(context.Background(), "sling_academy")
	assert.Error(t, err)
}
