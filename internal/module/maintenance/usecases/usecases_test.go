package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-service/internal/module/maintenance/mocks"
	"rental-service/internal/module/maintenance/models/entity"
	"rental-service/internal/module/maintenance/models/request"
	"rental-service/internal/module/maintenance/usecases"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	dateTimeNow = time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.GetLogger(), usecases.WithClock(func() time.Time { return dateTimeNow }))
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	since := dateTimeNow.Add(-30 * 24 * time.Hour)
	until := dateTimeNow.Add(24 * time.Hour)

	t.Run("customer with a recent rental", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CarExists", ctx, int64(5)).Return(true, nil)
		repoMock.On("HasRecentBooking", ctx, int64(7), int64(5), since, until).Return(true, nil)
		repoMock.On("Insert", ctx, mock.MatchedBy(func(r entity.MaintenanceRequest) bool {
			return r.IssueDescription == "brakes squeal" && !r.IsResolved && r.ReportedByID == 7
		})).Return(entity.MaintenanceRequest{ID: 3, CarID: 5, ReportedByID: 7, IssueDescription: "brakes squeal"}, nil)

		resp, err := uc.Create(ctx, 7, "Customer", &request.CreateMaintenanceRequest{CarID: 5, IssueDescription: "  brakes squeal "})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		assert.False(t, resp.IsResolved)
	})

	t.Run("customer without a rental", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CarExists", ctx, int64(5)).Return(true, nil)
		repoMock.On("HasRecentBooking", ctx, int64(7), int64(5), since, until).Return(false, nil)

		_, err := uc.Create(ctx, 7, "Customer", &request.CreateMaintenanceRequest{CarID: 5, IssueDescription: "noise"})
		assert.True(t, errors.Is(err, http.StatusForbidden))
		assert.EqualError(t, err, "You can only report maintenance for cars you rented recently.")
	})

	t.Run("staff skip the rental check", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CarExists", ctx, int64(5)).Return(true, nil)
		repoMock.On("Insert", ctx, mock.Anything).Return(entity.MaintenanceRequest{ID: 4, CarID: 5}, nil)

		_, err := uc.Create(ctx, 1, "Admin", &request.CreateMaintenanceRequest{CarID: 5, IssueDescription: "service due"})
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "HasRecentBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank description", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.Create(ctx, 7, "Customer", &request.CreateMaintenanceRequest{CarID: 5, IssueDescription: "   "})
		assert.EqualError(t, err, "Issue description is required.")
	})

	t.Run("unknown car", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CarExists", ctx, int64(5)).Return(false, nil)

		_, err := uc.Create(ctx, 7, "Customer", &request.CreateMaintenanceRequest{CarID: 5, IssueDescription: "noise"})
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("open request", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByID", ctx, int64(3)).Return(entity.MaintenanceRequest{ID: 3}, nil)
		repoMock.On("Resolve", ctx, int64(3)).Return(nil)

		assert.NoError(t, uc.Resolve(ctx, 3))
	})

	t.Run("already resolved", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindByID", ctx, int64(3)).Return(entity.MaintenanceRequest{ID: 3, IsResolved: true}, nil)

		assert.EqualError(t, uc.Resolve(ctx, 3), "Request is already resolved.")
		repoMock.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})
}
