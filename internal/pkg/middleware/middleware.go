package middleware

import (
	"fmt"
	"strings"

	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/helpers"
	"rental-service/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email_user"
	LocalRole   = "role"
)

type Middleware struct {
	Log *otelzap.Logger
	JWT *jwt.Manager
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get(fiber.HeaderAuthorization)
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing authorization header"))
	}

	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid authorization header"))
	}

	claims, err := m.JWT.ValidateToken(strings.TrimSpace(token))
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError(err.Error()))
	}

	userID, err := claims.UserID()
	if err != nil {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("token does not carry a user id"))
	}

	ctx.Locals(LocalUserID, userID)
	ctx.Locals(LocalEmail, claims.Subject)
	ctx.Locals(LocalRole, claims.Role)

	return ctx.Next()
}

// RequireRoles must run after ValidateToken.
func (m *Middleware) RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(LocalRole).(string)
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return ctx.Next()
			}
		}

		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("role %q denied on %s %s", role, ctx.Method(), ctx.Path()))
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("you are not allowed to access this resource"))
	}
}

// Identity returns what ValidateToken stored on the request.
func Identity(ctx *fiber.Ctx) (userID int64, email, role string) {
	userID, _ = ctx.Locals(LocalUserID).(int64)
	email, _ = ctx.Locals(LocalEmail).(string)
	role, _ = ctx.Locals(LocalRole).(string)
	return userID, email, role
}
