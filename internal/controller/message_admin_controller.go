package controller

import (
	"banner-chat-be/internal/dto"
	"banner-chat-be/internal/pkg/serverutils"
	"banner-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageAdminController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	DeleteSelected(ctx *fiber.Ctx) error
}

type messageAdminController struct {
	messages service.IMessageAdminService
	guard    *PermissionGuard
}

func NewMessageAdminController(messages service.IMessageAdminService, guard *PermissionGuard) IMessageAdminController {
	return &messageAdminController{
		messages: messages,
		guard:    guard,
	}
}

func (c *messageAdminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/messages")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.guard.RequireStaff, c.List)
	h.Post("/delete", c.guard.RequireDelete("chat", "message"), c.DeleteSelected)
}

func (c *messageAdminController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	perPage := ctx.QueryInt("per_page", 25)

	var filter dto.MessageListFilter
	if raw := ctx.Query("chat_id"); raw != "" {
		chatId, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid chat_id filter")
		}
		filter.ChatId = &chatId
	}
	if raw := ctx.Query("is_deleted"); raw != "" {
		isDeleted := raw == "true" || raw == "1"
		filter.IsDeleted = &isDeleted
	}

	res, err := c.messages.List(ctx.Context(), page, perPage, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all messages", res))
}

func (c *messageAdminController) DeleteSelected(ctx *fiber.Ctx) error {
	var req dto.DeleteSelectedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.messages.DeleteSelected(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Selected messages deleted", nil))
}
