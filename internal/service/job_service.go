package service

import (
	"context"
	"fmt"
	"time"

	"banner-chat-be/internal/pkg/logger"
)

// JobPublisher is satisfied by the NATS publisher.
type JobPublisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}

type IJobService interface {
	// TriggerIngest publishes an immediate ingestion run for the named
	// provider. The worker validates the name; an unknown provider is
	// fatal to that invocation only.
	TriggerIngest(ctx context.Context, providerName string) error
}

type jobService struct {
	publisher JobPublisher
	logger    logger.ILogger
}

func NewJobService(publisher JobPublisher, log logger.ILogger) IJobService {
	return &jobService{
		publisher: publisher,
		logger:    log,
	}
}

func (s *jobService) TriggerIngest(ctx context.Context, providerName string) error {
	subject := fmt.Sprintf("jobs.ingest.%s", providerName)
	payload := map[string]interface{}{
		"provider":     providerName,
		"requested_at": time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, subject, payload); err != nil {
		s.logger.Error("jobs", "Failed to publish ingestion trigger", map[string]interface{}{
			"provider": providerName,
			"error":    err.Error(),
		})
		return err
	}
	s.logger.Info("jobs", "Ingestion trigger published", map[string]interface{}{
		"provider": providerName,
	})
	return nil
}
