package service

import (
	"context"

	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/pkg/provider"
)

type IIngestionService interface {
	// Run resolves the named provider and executes fetch, transform and
	// persist in strict sequence. Errors propagate to the caller; the
	// job boundary (scheduler or queue consumer) logs and swallows them.
	Run(ctx context.Context, providerName string) error
}

type ingestionService struct {
	providers *provider.Factory
	logger    logger.ILogger
}

func NewIngestionService(providers *provider.Factory, log logger.ILogger) IIngestionService {
	return &ingestionService{
		providers: providers,
		logger:    log,
	}
}

func (s *ingestionService) Run(ctx context.Context, providerName string) error {
	p, err := s.providers.Get(providerName)
	if err != nil {
		return err
	}

	data, err := p.Fetch(ctx)
	if err != nil {
		return err
	}

	candidates, err := p.Transform(ctx, data)
	if err != nil {
		return err
	}

	created, err := p.Persist(ctx, candidates)
	if err != nil {
		return err
	}

	s.logger.Info("ingestion", "Successfully fetched and saved new images", map[string]interface{}{
		"provider": providerName,
		"count":    created,
	})
	return nil
}
