package server

import (
	"banner-chat-be/internal/bootstrap"
	"banner-chat-be/internal/config"
	"banner-chat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	container *bootstrap.Container
	cfg       *config.Config
}

func New(container *bootstrap.Container, cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "banner-chat-be",
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Static("/media", cfg.App.MediaRoot)

	s := &Server{
		app:       app,
		container: container,
		cfg:       cfg,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	s.container.AuthController.RegisterRoutes(api)
	s.container.ChatAdminController.RegisterRoutes(api)
	s.container.MessageAdminController.RegisterRoutes(api)
	s.container.JobController.RegisterRoutes(api)
}

func (s *Server) Run() error {
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
