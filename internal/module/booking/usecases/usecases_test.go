package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-service/config"
	"rental-service/internal/module/booking/mocks"
	"rental-service/internal/module/booking/models/entity"
	"rental-service/internal/module/booking/models/request"
	"rental-service/internal/module/booking/usecases"
	"rental-service/internal/pkg/availability"
	"rental-service/internal/pkg/errors"
	lockerMocks "rental-service/internal/pkg/locker/mocks"
	"rental-service/internal/pkg/log"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
	schedulerMocks "rental-service/internal/pkg/scheduler/mocks"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc           usecases.Usecase
	repoMock     *mocks.Repositories
	lockMock     *lockerMocks.Locker
	enqueuerMock *schedulerMocks.Enqueuer
	logMock      log.Logger
	p            *mockPublisher
	dateTimeNow  = time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC)
	blockingIDs  = []int64{1, 2, 4}
)

type mockPublisher struct {
	topics []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.topics = append(m.topics, topic)
	return nil
}

func setup(cfg config.BookingConfig) {
	repoMock = new(mocks.Repositories)
	lockMock = new(lockerMocks.Locker)
	enqueuerMock = new(schedulerMocks.Enqueuer)
	p = &mockPublisher{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p, lockMock, enqueuerMock, lookup.Default(), cfg,
		usecases.WithClock(func() time.Time { return dateTimeNow }))
}

func teardown() {
	repoMock = nil
	lockMock = nil
	enqueuerMock = nil
	uc = nil
}

func defaultConfig() config.BookingConfig {
	return config.BookingConfig{TaxRate: 0.12}
}

func TestPriceQuote(t *testing.T) {
	rate := decimal.NewFromInt(100)
	taxRate := decimal.NewFromFloat(0.12)
	day0 := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		window   availability.Window
		days     int
		subtotal string
		taxes    string
		total    string
	}{
		{"two full days", availability.Window{From: day0, To: day0.Add(48 * time.Hour)}, 2, "200", "24", "224"},
		{"one hour bills a day", availability.Window{From: day0, To: day0.Add(time.Hour)}, 1, "100", "12", "112"},
		{"partial day rounds up", availability.Window{From: day0, To: day0.Add(49 * time.Hour)}, 3, "300", "36", "336"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := usecases.PriceQuote(rate, tc.window, taxRate)
			assert.Equal(t, tc.days, q.Days)
			assert.Equal(t, tc.subtotal, q.Subtotal.String())
			assert.Equal(t, tc.taxes, q.Taxes.String())
			assert.Equal(t, tc.total, q.Total.String())
		})
	}

	t.Run("taxes round half to even", func(t *testing.T) {
		q := usecases.PriceQuote(decimal.RequireFromString("10.125"), availability.Window{From: day0, To: day0.Add(time.Hour)}, decimal.NewFromInt(1))
		assert.Equal(t, "10.12", q.Taxes.StringFixed(2))
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindCarRate", ctx, int64(1)).Return(entity.CarRate{ID: 1, ModelName: "Civic", DailyRate: decimal.NewFromInt(100)}, nil)

		q, err := uc.Quote(ctx, &request.Quote{CarID: 1, From: from, To: from.Add(48 * time.Hour)})
		assert.NoError(t, err)
		assert.Equal(t, 2, q.Days)
		assert.Equal(t, "224.00", q.Total.StringFixed(2))
		assert.Equal(t, "24.00", q.Taxes.StringFixed(2))
	})

	t.Run("to before from", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		_, err := uc.Quote(ctx, &request.Quote{CarID: 1, From: from, To: from})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		repoMock.AssertNotCalled(t, "FindCarRate", mock.Anything, mock.Anything)
	})

	t.Run("car not found", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindCarRate", ctx, int64(9)).Return(entity.CarRate{}, errors.NotFound("car 9 not found"))

		_, err := uc.Quote(ctx, &request.Quote{CarID: 9, From: from, To: from.Add(time.Hour)})
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})

	t.Run("daily rate not set", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindCarRate", ctx, int64(2)).Return(entity.CarRate{ID: 2, DailyRate: decimal.Zero}, nil)

		_, err := uc.Quote(ctx, &request.Quote{CarID: 2, From: from, To: from.Add(time.Hour)})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	pickup := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	dropoff := time.Date(2025, time.January, 13, 10, 0, 0, 0, time.UTC)
	payload := request.CreateBooking{
		CarID:             5,
		PickupLocationID:  1,
		DropoffLocationID: 2,
		PickupAt:          pickup,
		DropoffAt:         dropoff,
	}

	t.Run("success next to an existing booking", func(t *testing.T) {
		setup(config.BookingConfig{TaxRate: 0.12, PendingTTL: 30 * time.Minute})
		defer teardown()

		unlocked := false
		existing := entity.Booking{
			ID:        3,
			CarID:     5,
			PickupAt:  time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC),
			DropoffAt: pickup,
			StatusID:  2,
		}
		toInsert := entity.Booking{
			UserID:            7,
			CarID:             5,
			PickupLocationID:  1,
			DropoffLocationID: 2,
			PickupAt:          pickup,
			DropoffAt:         dropoff,
			StatusID:          1,
			TotalAmount:       decimal.RequireFromString("112"),
			BookedAt:          dateTimeNow,
		}
		inserted := toInsert
		inserted.ID = 11

		repoMock.On("LocationExists", ctx, int64(1)).Return(true, nil)
		repoMock.On("LocationExists", ctx, int64(2)).Return(true, nil)
		lockMock.On("Lock", ctx, "lock:car:5").Return(func() { unlocked = true }, nil)
		repoMock.On("FindCarRate", ctx, int64(5)).Return(entity.CarRate{ID: 5, DailyRate: decimal.NewFromInt(100)}, nil)
		repoMock.On("FindBlockingBookings", ctx, int64(5), blockingIDs).Return([]entity.Booking{existing}, nil)
		repoMock.On("CreateBooking", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.UserID == toInsert.UserID && b.CarID == toInsert.CarID && b.StatusID == toInsert.StatusID &&
				b.TotalAmount.Equal(toInsert.TotalAmount) && b.BookedAt.Equal(toInsert.BookedAt)
		}), blockingIDs).Return(inserted, nil)
		enqueuerMock.On("EnqueueExpirePending", ctx, int64(11), dateTimeNow.Add(30*time.Minute)).Return(nil)
		repoMock.On("FindBookingDetailByID", ctx, int64(11)).Return(entity.BookingDetail{
			Booking:             inserted,
			CarName:             "Toyota Corolla",
			PickupLocationName:  "Downtown",
			DropoffLocationName: "Airport",
			StatusName:          lookup.BookingPending,
		}, nil)

		resp, err := uc.CreateBooking(ctx, 7, &payload)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, lookup.BookingPending, resp.StatusName)
		assert.Equal(t, "Toyota Corolla", resp.CarName)
		assert.Equal(t, "Downtown", resp.PickupLocationName)
		assert.Equal(t, "Airport", resp.DropoffLocationName)
		assert.True(t, unlocked)
		assert.Equal(t, []string{"notification"}, p.topics)
		enqueuerMock.AssertExpectations(t)
	})

	t.Run("overlapping booking", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		existing := entity.Booking{
			ID:        3,
			CarID:     5,
			PickupAt:  time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
			DropoffAt: time.Date(2025, time.January, 12, 23, 59, 0, 0, time.UTC),
			StatusID:  2,
		}

		repoMock.On("LocationExists", ctx, mock.Anything).Return(true, nil)
		lockMock.On("Lock", ctx, "lock:car:5").Return(func() {}, nil)
		repoMock.On("FindCarRate", ctx, int64(5)).Return(entity.CarRate{ID: 5, DailyRate: decimal.NewFromInt(100)}, nil)
		repoMock.On("FindBlockingBookings", ctx, int64(5), blockingIDs).Return([]entity.Booking{existing}, nil)

		_, err := uc.CreateBooking(ctx, 7, &payload)
		assert.True(t, errors.Is(err, http.StatusConflict))
		repoMock.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
		enqueuerMock.AssertNotCalled(t, "EnqueueExpirePending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dropoff before pickup", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		bad := payload
		bad.DropoffAt = pickup.Add(-time.Hour)

		_, err := uc.CreateBooking(ctx, 7, &bad)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("pickup location missing", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("LocationExists", ctx, int64(1)).Return(false, nil)

		_, err := uc.CreateBooking(ctx, 7, &payload)
		assert.True(t, errors.Is(err, http.StatusNotFound))
		lockMock.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	future := entity.Booking{ID: 4, UserID: 7, PickupAt: dateTimeNow.Add(24 * time.Hour), DropoffAt: dateTimeNow.Add(48 * time.Hour), StatusID: 2}

	t.Run("success", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(future, nil)
		repoMock.On("UpdateBookingStatus", ctx, int64(4), int64(2), int64(3)).Return(nil)

		assert.NoError(t, uc.CancelBooking(ctx, 7, 4))
		assert.Len(t, p.topics, 1)
	})

	t.Run("not the owner", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(future, nil)

		err := uc.CancelBooking(ctx, 8, 4)
		assert.True(t, errors.Is(err, http.StatusForbidden))
	})

	t.Run("after pickup", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		started := future
		started.PickupAt = dateTimeNow.Add(-time.Minute)
		repoMock.On("FindBookingByID", ctx, int64(4)).Return(started, nil)

		err := uc.CancelBooking(ctx, 7, 4)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already cancelled", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		cancelled := future
		cancelled.StatusID = 3
		repoMock.On("FindBookingByID", ctx, int64(4)).Return(cancelled, nil)

		err := uc.CancelBooking(ctx, 7, 4)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to confirmed", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{ID: 4, StatusID: 1}, nil)
		repoMock.On("UpdateBookingStatus", ctx, int64(4), int64(1), int64(2)).Return(nil)
		repoMock.On("FindBookingDetailByID", ctx, int64(4)).Return(entity.BookingDetail{
			Booking:    entity.Booking{ID: 4, StatusID: 2},
			StatusName: lookup.BookingConfirmed,
		}, nil)

		resp, err := uc.UpdateStatus(ctx, 4, &request.UpdateStatus{Status: "confirmed"})
		assert.NoError(t, err)
		assert.Equal(t, lookup.BookingConfirmed, resp.StatusName)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{ID: 4, StatusID: 5}, nil)

		_, err := uc.UpdateStatus(ctx, 4, &request.UpdateStatus{Status: "Confirmed"})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("unknown status", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{ID: 4, StatusID: 1}, nil)

		_, err := uc.UpdateStatus(ctx, 4, &request.UpdateStatus{Status: "Teleported"})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})
}

func TestExpirePending(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid pending booking is cancelled", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{ID: 4, UserID: 7, StatusID: 1}, nil)
		repoMock.On("HasSuccessfulPayment", ctx, int64(4)).Return(false, nil)
		repoMock.On("UpdateBookingStatus", ctx, int64(4), int64(1), int64(3)).Return(nil)

		assert.NoError(t, uc.ExpirePending(ctx, 4))
		repoMock.AssertExpectations(t)
	})

	t.Run("paid booking is left alone", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{ID: 4, StatusID: 1}, nil)
		repoMock.On("HasSuccessfulPayment", ctx, int64(4)).Return(true, nil)

		assert.NoError(t, uc.ExpirePending(ctx, 4))
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("confirmed booking is left alone", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{ID: 4, StatusID: 2}, nil)

		assert.NoError(t, uc.ExpirePending(ctx, 4))
		repoMock.AssertNotCalled(t, "HasSuccessfulPayment", mock.Anything, mock.Anything)
	})

	t.Run("deleted booking", func(t *testing.T) {
		setup(defaultConfig())
		defer teardown()

		repoMock.On("FindBookingByID", ctx, int64(4)).Return(entity.Booking{}, errors.NotFound("booking 4 not found"))

		assert.NoError(t, uc.ExpirePending(ctx, 4))
	})
}
