package repositories_test

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"testing"
	"time"

	"rental-service/internal/module/booking/models/entity"
	"rental-service/internal/module/booking/repositories"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	repo = repositories.New(dbx, log_internal.GetLogger())
}

func TestFindCarRate(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, model_name, daily_rate FROM cars WHERE id = $1`)

	testCases := []struct {
		name         string
		carID        int64
		mockFn       func()
		expectedCode int
		expectedCar  entity.CarRate
	}{
		{
			name:  "car found",
			carID: 1,
			mockFn: func() {
				rows := sqlxmock.NewRows([]string{"id", "model_name", "daily_rate"}).AddRow(1, "Civic", "100.00")
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectedCar: entity.CarRate{ID: 1, ModelName: "Civic", DailyRate: decimal.RequireFromString("100.00")},
		},
		{
			name:  "car not found",
			carID: 2,
			mockFn: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(sql.ErrNoRows)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "database error",
			carID: 3,
			mockFn: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(sql.ErrConnDone)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			tc.mockFn()

			car, err := repo.FindCarRate(context.Background(), tc.carID)
			if tc.expectedCode != 0 {
				assert.True(t, errors.Is(err, tc.expectedCode))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedCar.ID, car.ID)
				assert.True(t, tc.expectedCar.DailyRate.Equal(car.DailyRate))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateBooking(t *testing.T) {
	pickup := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	booking := entity.Booking{
		UserID:            7,
		CarID:             5,
		PickupLocationID:  1,
		DropoffLocationID: 2,
		PickupAt:          pickup,
		DropoffAt:         pickup.Add(24 * time.Hour),
		StatusID:          1,
		TotalAmount:       decimal.RequireFromString("112.00"),
		BookedAt:          pickup.Add(-48 * time.Hour),
	}
	lockQuery := regexp.QuoteMeta(`SELECT id FROM cars WHERE id = $1 FOR UPDATE`)
	countQuery := regexp.QuoteMeta(`SELECT COUNT(1) FROM bookings`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO bookings`)

	t.Run("inserted", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(5).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectQuery(countQuery).
			WithArgs(5, sqlxmock.AnyArg(), booking.DropoffAt, booking.PickupAt).
			WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(insertQuery).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		created, err := repo.CreateBooking(context.Background(), booking, []int64{1, 2, 4})
		assert.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlap found inside the transaction", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(5).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectQuery(countQuery).WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, err := repo.CreateBooking(context.Background(), booking, []int64{1, 2, 4})
		assert.True(t, errors.Is(err, http.StatusConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("car vanished", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(5).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.CreateBooking(context.Background(), booking, []int64{1, 2, 4})
		assert.True(t, errors.Is(err, http.StatusNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE bookings SET status_id = $1 WHERE id = $2 AND status_id = $3`)

	t.Run("updated", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(3, 4, 1).WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateBookingStatus(context.Background(), 4, 1, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status moved underneath", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(3, 4, 1).WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.UpdateBookingStatus(context.Background(), 4, 1, 3)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})
}

func TestDeleteBooking(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM bookings WHERE id = $1`)

	t.Run("missing", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(4).WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.DeleteBooking(context.Background(), 4)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}
