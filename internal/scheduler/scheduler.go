package scheduler

import (
	"context"
	"time"

	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/internal/service"
)

// Scheduler runs provider ingestion on a fixed interval. Failures are
// logged at the job boundary so one bad cycle never stops the ticker.
type Scheduler struct {
	ingestion service.IIngestionService
	interval  time.Duration
	providers []string
	logger    logger.ILogger
}

func New(ingestion service.IIngestionService, intervalMinutes int, providers []string, log logger.ILogger) *Scheduler {
	if intervalMinutes < 1 {
		intervalMinutes = 1
	}
	return &Scheduler{
		ingestion: ingestion,
		interval:  time.Duration(intervalMinutes) * time.Minute,
		providers: providers,
		logger:    log,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler", "Starting ingestion scheduler", map[string]interface{}{
		"interval":  s.interval.String(),
		"providers": s.providers,
	})

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler", "Stopping ingestion scheduler", nil)
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, name := range s.providers {
		if err := s.ingestion.Run(ctx, name); err != nil {
			s.logger.Error("scheduler", "Ingestion cycle failed", map[string]interface{}{
				"provider": name,
				"error":    err.Error(),
			})
		}
	}
}
