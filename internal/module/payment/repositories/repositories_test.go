package repositories_test

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"testing"
	"time"

	"rental-service/internal/module/payment/models/entity"
	"rental-service/internal/module/payment/repositories"
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

func TestCreatePayment(t *testing.T) {
	lockQuery := regexp.QuoteMeta(`SELECT id FROM bookings WHERE id = $1 FOR UPDATE`)
	paidQuery := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1 AND status = $2)`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO payments (booking_id, method_id, amount, status, transaction_id, paid_at)`)

	payment := entity.Payment{
		BookingID:     9,
		MethodID:      1,
		Amount:        decimal.NewFromInt(224),
		Status:        "Success",
		TransactionID: "abc",
		PaidAt:        time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC),
	}

	t.Run("inserted", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(9).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(paidQuery).WithArgs(9, "Success").WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(insertQuery).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(31))
		mock.ExpectCommit()

		saved, err := repo.CreatePayment(context.Background(), payment)
		assert.NoError(t, err)
		assert.Equal(t, int64(31), saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already paid", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(9).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(paidQuery).WithArgs(9, "Success").WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.CreatePayment(context.Background(), payment)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		assert.EqualError(t, err, "This booking already has a successful payment.")
	})

	t.Run("failed charge skips the re-check", func(t *testing.T) {
		setup()
		failed := payment
		failed.Status = "Failed"

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(9).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(insertQuery).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(32))
		mock.ExpectCommit()

		saved, err := repo.CreatePayment(context.Background(), failed)
		assert.NoError(t, err)
		assert.Equal(t, "Failed", saved.Status)
	})

	t.Run("booking vanished", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(9).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.CreatePayment(context.Background(), payment)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestFindByID(t *testing.T) {
	setup()
	query := regexp.QuoteMeta(`WHERE p.id = $1`)
	mock.ExpectQuery(query).WithArgs(4).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 4)
	assert.True(t, errors.Is(err, http.StatusNotFound))
	assert.EqualError(t, err, "payment 4 not found")
}
