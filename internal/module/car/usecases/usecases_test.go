package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-service/internal/module/car/mocks"
	"rental-service/internal/module/car/models/entity"
	"rental-service/internal/module/car/models/request"
	"rental-service/internal/module/car/usecases"
	"rental-service/internal/pkg/availability"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.GetLogger(), lookup.Default())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func at(day, hour int) time.Time {
	return time.Date(2025, time.January, day, hour, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	year := 2022
	payload := request.UpsertCar{
		BrandID:   1,
		ModelName: "Civic",
		Year:      &year,
		DailyRate: decimal.RequireFromString("49.999"),
		StatusID:  1,
	}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("BrandExists", ctx, int64(1)).Return(true, nil)
		repoMock.On("DuplicateExists", ctx, int64(1), "Civic", &year, int64(0)).Return(false, nil)
		repoMock.On("Insert", ctx, mock.MatchedBy(func(c entity.Car) bool {
			return c.ModelName == "Civic" && c.DailyRate.String() == "50"
		})).Return(int64(3), nil)
		repoMock.On("FindByID", ctx, int64(3)).Return(entity.CarDetail{
			Car:        entity.Car{ID: 3, BrandID: 1, ModelName: "Civic", DailyRate: decimal.NewFromInt(50), StatusID: 1},
			BrandName:  "Honda",
			StatusName: "Available",
		}, nil)

		resp, err := uc.Create(ctx, &payload)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "Honda", resp.BrandName)
	})

	t.Run("duplicate", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("BrandExists", ctx, int64(1)).Return(true, nil)
		repoMock.On("DuplicateExists", ctx, int64(1), "Civic", &year, int64(0)).Return(true, nil)

		_, err := uc.Create(ctx, &payload)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		repoMock.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("unknown brand", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("BrandExists", ctx, int64(1)).Return(false, nil)

		_, err := uc.Create(ctx, &payload)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})

	t.Run("unknown status", func(t *testing.T) {
		setup()
		defer teardown()

		bad := payload
		bad.StatusID = 42
		repoMock.On("BrandExists", ctx, int64(1)).Return(true, nil)

		_, err := uc.Create(ctx, &bad)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("filters out overlapping cars", func(t *testing.T) {
		setup()
		defer teardown()

		cars := []entity.CarDetail{
			{Car: entity.Car{ID: 5, ModelName: "Corolla"}},
			{Car: entity.Car{ID: 6, ModelName: "Yaris"}},
		}
		repoMock.On("Search", ctx, entity.SearchFilter{FuelType: "Petrol"}).Return(cars, nil)
		repoMock.On("FindBlockingWindows", ctx, []int64{5, 6}, []int64{1, 2, 4}).Return([]entity.BookedWindow{
			{CarID: 5, PickupAt: at(10, 10), DropoffAt: at(12, 10)},
			{CarID: 6, PickupAt: at(12, 10), DropoffAt: at(13, 10)},
		}, nil)

		resp, err := uc.Search(ctx, &request.Search{From: at(11, 0), To: at(12, 10), FuelType: "Petrol"})
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(6), resp[0].ID)
	})

	t.Run("invalid window", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.Search(ctx, &request.Search{From: at(12, 0), To: at(11, 0)})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()
	booked := []entity.BookedWindow{{CarID: 5, PickupAt: at(10, 10), DropoffAt: at(12, 10)}}

	testCases := []struct {
		name     string
		window   availability.Window
		expected bool
	}{
		{"overlapping day", availability.Window{From: at(11, 0), To: time.Date(2025, time.January, 11, 23, 59, 0, 0, time.UTC)}, false},
		{"adjacent window", availability.Window{From: at(12, 10), To: at(13, 10)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			repoMock.On("FindByID", ctx, int64(5)).Return(entity.CarDetail{Car: entity.Car{ID: 5}}, nil)
			repoMock.On("FindBlockingWindows", ctx, []int64{5}, []int64{1, 2, 4}).Return(booked, nil)

			ok, err := uc.IsAvailable(ctx, 5, tc.window)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status", func(t *testing.T) {
		setup()
		defer teardown()

		err := uc.SetStatus(ctx, 5, &request.SetStatus{StatusID: 99})
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})

	t.Run("maintenance", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("UpdateStatus", ctx, int64(5), int64(4)).Return(nil)
		assert.NoError(t, uc.SetStatus(ctx, 5, &request.SetStatus{StatusID: 4}))
	})
}
