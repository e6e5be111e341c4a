package controller

import (
	"banner-chat-be/internal/dto"
	"banner-chat-be/internal/pkg/serverutils"
	"banner-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	TriggerIngest(ctx *fiber.Ctx) error
}

type jobController struct {
	jobs  service.IJobService
	guard *PermissionGuard
}

func NewJobController(jobs service.IJobService, guard *PermissionGuard) IJobController {
	return &jobController{
		jobs:  jobs,
		guard: guard,
	}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/jobs")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/ingest", c.guard.RequireModify("chat", "externalimage"), c.TriggerIngest)
}

func (c *jobController) TriggerIngest(ctx *fiber.Ctx) error {
	var req dto.TriggerIngestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.jobs.TriggerIngest(ctx.Context(), req.Provider); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Ingestion triggered", nil))
}
