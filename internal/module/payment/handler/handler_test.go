package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"rental-service/internal/module/payment/handler"
	"rental-service/internal/module/payment/mocks"
	"rental-service/internal/module/payment/models/request"
	"rental-service/internal/module/payment/models/response"
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
	h := &handler.PaymentHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(middleware.LocalUserID, int64(7))
		ctx.Locals(middleware.LocalRole, "Customer")
		return ctx.Next()
	})
	app.Post("/payments", h.Pay)
	app.Get("/payments/mine", h.GetMine)
}

func TestPay(t *testing.T) {
	setup()

	t.Run("created", func(t *testing.T) {
		ucm.On("Pay", mock.Anything, int64(7), "Customer", &request.Pay{BookingID: 9, MethodID: 1}).
			Return(response.Payment{ID: 31, BookingID: 9, Status: "Success"}, nil).Once()

		req := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(`{"booking_id":9,"method_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("missing method", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(`{"booking_id":9}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("already paid", func(t *testing.T) {
		ucm.On("Pay", mock.Anything, int64(7), "Customer", &request.Pay{BookingID: 10, MethodID: 1}).
			Return(response.Payment{}, errors.BadRequest("This booking already has a successful payment.")).Once()

		req := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(`{"booking_id":10,"method_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "This booking already has a successful payment.", body["message"])
	})
}

func TestGetMine(t *testing.T) {
	setup()

	ucm.On("GetMine", mock.Anything, int64(7)).Return([]response.Payment{{ID: 31}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/payments/mine", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}
