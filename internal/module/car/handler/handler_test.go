package handler_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"rental-service/internal/module/car/handler"
	"rental-service/internal/module/car/mocks"
	"rental-service/internal/module/car/models/response"
	"rental-service/internal/pkg/availability"
	log_internal "rental-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
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
	h := &handler.CarHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Get("/cars", h.GetAll)
	app.Get("/cars/:id/availability", h.CheckAvailability)
}

func TestCheckAvailability(t *testing.T) {
	setup()

	window := availability.Window{
		From: time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.January, 13, 10, 0, 0, 0, time.UTC),
	}

	t.Run("available", func(t *testing.T) {
		ucm.On("IsAvailable", mock.Anything, int64(5), window).Return(true, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/cars/5/availability?from=2025-01-12T10:00:00Z&to=2025-01-13T10:00:00Z", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("taken", func(t *testing.T) {
		ucm.On("IsAvailable", mock.Anything, int64(6), window).Return(false, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/cars/6/availability?from=2025-01-12T10:00:00Z&to=2025-01-13T10:00:00Z", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/cars/5/availability?from=yesterday&to=2025-01-13T10:00:00Z", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAll(t *testing.T) {
	setup()

	ucm.On("GetAll", mock.Anything, "toy").Return([]response.Car{{ID: 5, BrandName: "Toyota"}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/cars?brand=toy", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}
