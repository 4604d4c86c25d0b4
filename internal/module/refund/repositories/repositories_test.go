package repositories_test

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"testing"
	"time"

	"rental-service/internal/module/refund/repositories"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
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

func TestApprove(t *testing.T) {
	refundQuery := regexp.QuoteMeta(`UPDATE refunds SET status = $1, processed_at = $2 WHERE id = $3 AND status = $4 RETURNING payment_id`)
	paymentQuery := regexp.QuoteMeta(`UPDATE payments SET status = $1 WHERE id = $2`)
	now := time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)

	t.Run("refund and payment flipped together", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(refundQuery).WithArgs("Refunded", now, 4, "Pending").
			WillReturnRows(sqlxmock.NewRows([]string{"payment_id"}).AddRow(31))
		mock.ExpectExec(paymentQuery).WithArgs("Refunded", 31).WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Approve(context.Background(), 4, now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no longer pending", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(refundQuery).WithArgs("Refunded", now, 4, "Pending").WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.Approve(context.Background(), 4, now)
		assert.True(t, errors.Is(err, http.StatusBadRequest))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("payment update fails", func(t *testing.T) {
		setup()
		mock.ExpectBegin()
		mock.ExpectQuery(refundQuery).WithArgs("Refunded", now, 4, "Pending").
			WillReturnRows(sqlxmock.NewRows([]string{"payment_id"}).AddRow(31))
		mock.ExpectExec(paymentQuery).WithArgs("Refunded", 31).WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.Approve(context.Background(), 4, now)
		assert.True(t, errors.Is(err, http.StatusInternalServerError))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReject(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE refunds SET status = $1, processed_at = $2 WHERE id = $3 AND status = $4`)
	now := time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)

	setup()
	mock.ExpectExec(query).WithArgs("Rejected", now, 4, "Pending").WillReturnResult(sqlxmock.NewResult(0, 0))

	err := repo.Reject(context.Background(), 4, now)
	assert.EqualError(t, err, "Only pending refunds can be rejected.")
}
