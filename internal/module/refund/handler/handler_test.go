package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"rental-service/internal/module/refund/handler"
	"rental-service/internal/module/refund/mocks"
	"rental-service/internal/module/refund/models/response"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h := &handler.RefundHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(middleware.LocalUserID, int64(7))
		return ctx.Next()
	})
	app.Post("/refunds/request", h.Request)
	app.Post("/refunds/:id/approve", h.Approve)
}

func TestRequest(t *testing.T) {
	setup()

	ucm.On("Request", mock.Anything, int64(7), mock.Anything).
		Return(response.Refund{ID: 4, Amount: decimal.NewFromInt(50), Status: "Pending"}, nil).Once()

	req := httptest.NewRequest("POST", "/refunds/request", bytes.NewBufferString(`{"booking_id":9,"payment_id":31,"amount":50}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestApprove(t *testing.T) {
	setup()

	t.Run("approved", func(t *testing.T) {
		ucm.On("Approve", mock.Anything, int64(4)).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/refunds/4/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("approved twice", func(t *testing.T) {
		ucm.On("Approve", mock.Anything, int64(4)).Return(errors.BadRequest("Only pending refunds can be approved.")).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/refunds/4/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/refunds/abc/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
