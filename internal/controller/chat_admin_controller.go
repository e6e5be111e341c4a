package controller

import (
	"errors"

	"banner-chat-be/internal/dto"
	"banner-chat-be/internal/pkg/serverutils"
	"banner-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatAdminController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	DeleteSelected(ctx *fiber.Ctx) error
	ShowBannerForm(ctx *fiber.Ctx) error
	SendBanners(ctx *fiber.Ctx) error
}

type chatAdminController struct {
	chats   service.IChatAdminService
	banners service.IBannerService
	guard   *PermissionGuard
}

func NewChatAdminController(chats service.IChatAdminService, banners service.IBannerService, guard *PermissionGuard) IChatAdminController {
	return &chatAdminController{
		chats:   chats,
		banners: banners,
		guard:   guard,
	}
}

func (c *chatAdminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/chats")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.guard.RequireStaff, c.List)
	h.Post("/delete", c.guard.RequireDelete("chat", "chat"), c.DeleteSelected)
	h.Get("/banners", c.guard.RequireModify("chat", "message"), c.ShowBannerForm)
	h.Post("/banners", c.guard.RequireModify("chat", "message"), c.SendBanners)
}

func (c *chatAdminController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	perPage := ctx.QueryInt("per_page", 25)

	var filter dto.ChatListFilter
	if raw := ctx.Query("user_id"); raw != "" {
		userId, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user_id filter")
		}
		filter.UserId = &userId
	}
	if raw := ctx.Query("is_deleted"); raw != "" {
		isDeleted := raw == "true" || raw == "1"
		filter.IsDeleted = &isDeleted
	}

	res, err := c.chats.List(ctx.Context(), page, perPage, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all chats", res))
}

func (c *chatAdminController) DeleteSelected(ctx *fiber.Ctx) error {
	var req dto.DeleteSelectedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chats.DeleteSelected(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Selected chats deleted", nil))
}

func (c *chatAdminController) ShowBannerForm(ctx *fiber.Ctx) error {
	form := dto.BannerFormResponse{
		Title: "Send Banner to All Chats",
		Fields: []dto.BannerFormField{
			{Name: "content", Label: "Message Content", Widget: "textarea", Required: true},
		},
	}
	return ctx.JSON(serverutils.SuccessResponse("Banner form", form))
}

func (c *chatAdminController) SendBanners(ctx *fiber.Ctx) error {
	var req dto.SendBannerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.banners.SendBanners(ctx.Context(), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNoImageAvailable) {
			return ctx.JSON(serverutils.WarningResponse("No new image available to send in banners"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Error sending banners"))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Banners sent successfully.", nil))
}
