package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"banner-chat-be/internal/bootstrap"
	"banner-chat-be/internal/config"
	"banner-chat-be/internal/server"
	"banner-chat-be/pkg/database"

	"gorm.io/gorm"
)

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

	go container.CacheRefillService.Consume(ctx)

	srv := server.New(container, cfg)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting REST server on port %s", cfg.App.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
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
