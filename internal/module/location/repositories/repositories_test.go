package repositories_test

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"rental-service/internal/module/location/models/entity"
	"rental-service/internal/module/location/repositories"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	log_internal "rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func TestFindByID(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name, address FROM locations WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		setup()
		mock.ExpectQuery(query).WithArgs(1).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "name", "address"}).AddRow(1, "Downtown", "Main St 1"))

		location, err := repo.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, entity.Location{ID: 1, Name: "Downtown", Address: "Main St 1"}, location)
	})

	t.Run("not found", func(t *testing.T) {
		setup()
		mock.ExpectQuery(query).WithArgs(9).WillReturnRows(sqlxmock.NewRows([]string{"id", "name", "address"}))

		_, err := repo.FindByID(context.Background(), 9)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestDelete(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM locations WHERE id = $1`)

	t.Run("deleted", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(3).WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("referenced by bookings", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(1).WillReturnError(&pq.Error{Code: database.ForeignKeyViolation})

		err := repo.Delete(context.Background(), 1)
		assert.True(t, errors.Is(err, http.StatusConflict))
	})
}
