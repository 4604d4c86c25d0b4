package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"rental-service/internal/module/review/handler"
	"rental-service/internal/module/review/mocks"
	"rental-service/internal/module/review/models/request"
	"rental-service/internal/module/review/models/response"
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

func setup(role string) {
	ucm = &mocks.Usecase{}
	h := &handler.ReviewHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Get("/reviews/car/:id", h.GetByCar)
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(middleware.LocalUserID, int64(7))
		ctx.Locals(middleware.LocalRole, role)
		return ctx.Next()
	})
	app.Post("/reviews", h.Create)
	app.Delete("/reviews/:id", h.Delete)
}

func TestCreate(t *testing.T) {
	setup("Customer")

	t.Run("created", func(t *testing.T) {
		ucm.On("Create", mock.Anything, int64(7), &request.CreateReview{BookingID: 9, Rating: 5, Comment: "clean car"}).
			Return(response.Review{ID: 1, BookingID: 9, Rating: 5}, nil).Once()

		req := httptest.NewRequest("POST", "/reviews", bytes.NewBufferString(`{"booking_id":9,"rating":5,"comment":"clean car"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("too early", func(t *testing.T) {
		ucm.On("Create", mock.Anything, int64(7), mock.Anything).
			Return(response.Review{}, errors.BadRequest("You can review only after the dropoff time.")).Once()

		req := httptest.NewRequest("POST", "/reviews", bytes.NewBufferString(`{"booking_id":10,"rating":4}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body struct {
			Message string `json:"message"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "You can review only after the dropoff time.", body.Message)
	})
}

func TestDelete(t *testing.T) {
	setup("RentalAgent")

	ucm.On("Delete", mock.Anything, int64(7), "RentalAgent", int64(3)).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/reviews/3", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestGetByCar(t *testing.T) {
	setup("")

	ucm.On("GetByCar", mock.Anything, int64(5)).Return([]response.Review{{ID: 1, CarID: 5, Rating: 5}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/reviews/car/5", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
