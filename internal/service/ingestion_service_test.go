package service

import (
	"context"
	"errors"
	"testing"

	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/pkg/provider"

	"github.com/stretchr/testify/assert"
)

type scriptedProvider struct {
	name     string
	steps    []string
	fetchErr error
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Fetch(ctx context.Context) (map[string]interface{}, error) {
	p.steps = append(p.steps, "fetch")
	if p.fetchErr != nil {
		return nil, p.fetchErr
	}
	return map[string]interface{}{"photos": []interface{}{}}, nil
}

func (p *scriptedProvider) Transform(ctx context.Context, data map[string]interface{}) ([]provider.Candidate, error) {
	p.steps = append(p.steps, "transform")
	return []provider.Candidate{{ExternalID: 1}}, nil
}

func (p *scriptedProvider) Persist(ctx context.Context, candidates []provider.Candidate) (int, error) {
	p.steps = append(p.steps, "persist")
	return len(candidates), nil
}

func TestIngestionRun_StepsInOrder(t *testing.T) {
	p := &scriptedProvider{name: "sling_academy"}
	svc := NewIngestionService(provider.NewFactory(p), logger.NewNoopLogger())

	err := svc.Run(context.Background(), "sling_academy")
	assert.NoError(t, err)
	assert.Equal(t, []string{"fetch", "transform", "persist"}, p.steps)
}

func TestIngestionRun_UnknownProvider(t *testing.T) {
	svc := NewIngestionService(provider.NewFactory(), logger.NewNoopLogger())

	err := svc.Run(context.Background(), "unsplash")
	assert.ErrorIs(t, err, provider.ErrUnsupported)
}

func TestIngestionRun_FetchFailureStopsPipeline(t *testing.T) {
	p := &scriptedProvider{name: "sling_academy", fetchErr: errors.New("api down")}
	svc := NewIngestionService(provider.NewFactory(p), logger.NewNoopLogger())

	err := svc.Run(context.Background(), "sling_academy")
	assert.Error(t, err)
	assert.Equal(t, []string{"fetch"}, p.steps)
}
