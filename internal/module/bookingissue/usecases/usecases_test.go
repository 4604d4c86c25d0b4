package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"rental-service/internal/module/bookingissue/mocks"
	"rental-service/internal/module/bookingissue/models/entity"
	"rental-service/internal/module/bookingissue/models/request"
	"rental-service/internal/module/bookingissue/usecases"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.GetLogger())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("opened by owner", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingOwner", ctx, int64(9)).Return(int64(7), nil)
		repoMock.On("Insert", ctx, mock.MatchedBy(func(i entity.BookingIssue) bool {
			return i.Status == entity.StatusOpen && i.IssueType == "Billing"
		})).Return(entity.BookingIssue{ID: 2, BookingID: 9, UserID: 7, IssueType: "Billing", Status: "Open"}, nil)

		resp, err := uc.Create(ctx, 7, &request.CreateIssue{BookingID: 9, IssueType: "Billing", Description: "charged twice"})
		assert.NoError(t, err)
		assert.Equal(t, "Open", resp.Status)
	})

	t.Run("not the owner", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingOwner", ctx, int64(9)).Return(int64(8), nil)

		_, err := uc.Create(ctx, 7, &request.CreateIssue{BookingID: 9, Description: "x"})
		assert.True(t, errors.Is(err, http.StatusForbidden))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		input    string
		stored   string
		rejected bool
	}{
		{input: "in progress", stored: "In Progress"},
		{input: "CLOSED", stored: "Closed"},
		{input: " resolved ", stored: "Resolved"},
		{input: "Escalated", rejected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			setup()
			defer teardown()

			repoMock.On("UpdateStatus", ctx, int64(2), tc.stored).Return(nil)

			err := uc.UpdateStatus(ctx, 2, &request.UpdateStatus{Status: tc.input})
			if tc.rejected {
				assert.EqualError(t, err, "Invalid status. Allowed: Open, In Progress, Resolved, Closed.")
				repoMock.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
			repoMock.AssertExpectations(t)
		})
	}
}
