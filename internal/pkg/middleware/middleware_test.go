package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"rental-service/internal/pkg/jwt"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
	"rental-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setup() (*fiber.App, *jwt.Manager) {
	manager := jwt.NewManager("0123456789abcdef0123456789abcdef", "rental-service", "rental-clients", time.Hour)
	m := &middleware.Middleware{Log: log_internal.Setup(), JWT: manager}

	app := fiber.New()
	app.Get("/me", m.ValidateToken, func(ctx *fiber.Ctx) error {
		userID, email, role := middleware.Identity(ctx)
		return ctx.JSON(fiber.Map{"uid": userID, "email": email, "role": role})
	})
	app.Get("/staff", m.ValidateToken, m.RequireRoles(lookup.RoleAdmin, lookup.RoleRentalAgent), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app, manager
}

func TestValidateToken(t *testing.T) {
	app, manager := setup()

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _ := manager.GenerateToken(7, "c@example.com", lookup.RoleCustomer)
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireRoles(t *testing.T) {
	app, manager := setup()

	t.Run("customer denied", func(t *testing.T) {
		token, _ := manager.GenerateToken(7, "c@example.com", lookup.RoleCustomer)
		req := httptest.NewRequest("GET", "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("agent allowed", func(t *testing.T) {
		token, _ := manager.GenerateToken(2, "agent@example.com", lookup.RoleRentalAgent)
		req := httptest.NewRequest("GET", "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
