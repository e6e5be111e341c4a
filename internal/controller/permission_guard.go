package controller

import (
	"time"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/serverutils"
	"banner-chat-be/internal/service"
	"banner-chat-be/pkg/permission"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// PermissionGuard gates admin routes on the capability predicate.
// Loaded users are memoized briefly so every admin request does not
// cost a user lookup.
type PermissionGuard struct {
	users     service.IUserService
	userCache *gocache.Cache
}

func NewPermissionGuard(users service.IUserService) *PermissionGuard {
	return &PermissionGuard{
		users:     users,
		userCache: gocache.New(time.Minute, 5*time.Minute),
	}
}

func (g *PermissionGuard) currentUser(ctx *fiber.Ctx) (*entity.User, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user identity")
	}

	if cached, ok := g.userCache.Get(userIdStr); ok {
		return cached.(*entity.User), nil
	}

	user, err := g.users.GetByID(ctx.Context(), userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unknown user")
	}

	g.userCache.Set(userIdStr, user, gocache.DefaultExpiration)
	return user, nil
}

// RequireStaff admits staff accounts only.
func (g *PermissionGuard) RequireStaff(ctx *fiber.Ctx) error {
	user, err := g.currentUser(ctx)
	if err != nil {
		return err
	}
	if !user.IsStaff && !user.IsSuperuser {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse("staff access required"))
	}
	ctx.Locals("current_user", user)
	return ctx.Next()
}

// RequireModify admits users who may change or add items in the module.
func (g *PermissionGuard) RequireModify(app, module string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := g.currentUser(ctx)
		if err != nil {
			return err
		}
		if !permission.CanModify(user, app, module) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse("permission denied"))
		}
		ctx.Locals("current_user", user)
		return ctx.Next()
	}
}

// RequireDelete admits users who may delete items in the module.
func (g *PermissionGuard) RequireDelete(app, module string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := g.currentUser(ctx)
		if err != nil {
			return err
		}
		if !permission.CanDelete(user, app, module) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse("permission denied"))
		}
		ctx.Locals("current_user", user)
		return ctx.Next()
	}
}
