package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"banner-chat-be/internal/bootstrap"
	"banner-chat-be/internal/config"
	"banner-chat-be/internal/scheduler"
	"banner-chat-be/pkg/database"

	pkgNats "banner-chat-be/pkg/nats"

	"gorm.io/gorm"
)

type ingestTrigger struct {
	Provider string `json:"provider"`
}

func main() {
	cfg := config.Load()

	db, err := connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	defer container.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers := []string{"sling_academy"}
	sched := scheduler.New(container.IngestionService, cfg.Providers.IntervalMinutes, providers, container.Logger)
	go sched.Start(ctx)

	sub, err := pkgNats.NewSubscriber(cfg.Nats.URL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v. On-demand triggers disabled", err)
	} else {
		defer sub.Close()
		err = sub.Subscribe("jobs.ingest.*", "ingestion-worker", func(ctx context.Context, subject string, data []byte) error {
			var trigger ingestTrigger
			if err := json.Unmarshal(data, &trigger); err != nil || trigger.Provider == "" {
				// Fall back to the subject suffix for bare payloads.
				trigger.Provider = subject[strings.LastIndex(subject, ".")+1:]
			}
			return container.IngestionService.Run(ctx, trigger.Provider)
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to ingest triggers: %v", err)
		}
	}

	log.Println("Worker started")
	<-ctx.Done()
	log.Println("Worker shutting down")
}

func connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Connection != "" {
		return database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	return database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
}
