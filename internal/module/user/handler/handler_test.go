package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"rental-service/internal/module/user/handler"
	"rental-service/internal/module/user/mocks"
	"rental-service/internal/module/user/models/request"
	"rental-service/internal/module/user/models/response"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h := &handler.UserHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)

	authed := app.Group("/users", func(ctx *fiber.Ctx) error {
		ctx.Locals(middleware.LocalUserID, int64(4))
		ctx.Locals(middleware.LocalRole, "Admin")
		return ctx.Next()
	})
	authed.Get("/me", h.Me)
	authed.Patch("/:id/status", h.SetActive)
}

func TestRegister(t *testing.T) {
	setup()

	t.Run("created", func(t *testing.T) {
		payload := &request.Register{FirstName: "Ana", Email: "ana@example.com", Password: "secret1"}
		ucm.On("Register", mock.Anything, payload).Return(response.User{ID: 4, RoleName: "Customer"}, nil).Once()

		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(`{"first_name":"Ana","email":"ana@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("invalid email", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(`{"first_name":"Ana","email":"nope","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ucm.On("Register", mock.Anything, mock.Anything).Return(response.User{}, errors.UserAlreadyExists("user already exists")).Once()

		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(`{"first_name":"Ana","email":"ana@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	setup()

	t.Run("token", func(t *testing.T) {
		ucm.On("Login", mock.Anything, &request.Login{Email: "ana@example.com", Password: "secret1"}).
			Return(response.Token{Token: "abc"}, nil).Once()

		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"ana@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data response.Token `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "abc", body.Data.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		ucm.On("Login", mock.Anything, mock.Anything).Return(response.Token{}, errors.UnauthorizedError("invalid email or password")).Once()

		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"ana@example.com","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestMe(t *testing.T) {
	setup()

	ucm.On("Me", mock.Anything, int64(4)).Return(response.Me{ID: 4, RoleName: "Admin"}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/users/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestSetActive(t *testing.T) {
	setup()

	t.Run("deactivated", func(t *testing.T) {
		ucm.On("SetActive", mock.Anything, int64(9), false).Return(nil).Once()

		req := httptest.NewRequest("PATCH", "/users/9/status", bytes.NewBufferString(`{"is_active":false}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("missing flag", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/users/9/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
