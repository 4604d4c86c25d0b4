package repositories_test

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"rental-service/internal/module/user/models/entity"
	"rental-service/internal/module/user/repositories"
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

func TestInsert(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO users (first_name, last_name, email, phone_number, password_hash, role_id, is_active, created_at)`)
	user := entity.User{
		FirstName:    "Ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		RoleID:       3,
		IsActive:     true,
		CreatedAt:    time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC),
	}

	t.Run("inserted", func(t *testing.T) {
		setup()
		mock.ExpectQuery(query).WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(4))

		saved, err := repo.Insert(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email taken", func(t *testing.T) {
		setup()
		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: database.UniqueViolation})

		_, err := repo.Insert(context.Background(), user)
		assert.True(t, errors.Is(err, http.StatusConflict))
	})
}

func TestFindByEmail(t *testing.T) {
	setup()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = $1`)).
		WithArgs("ana@example.com").
		WillReturnRows(sqlxmock.NewRows([]string{"id", "first_name", "email", "password_hash", "role_id", "is_active", "role_name"}).
			AddRow(4, "Ana", "ana@example.com", "hash", 3, true, "Customer"))

	user, err := repo.FindByEmail(context.Background(), "ana@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Customer", user.RoleName)
	assert.True(t, user.IsActive)
}

func TestDelete(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)

	t.Run("has bookings", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(4).WillReturnError(&pq.Error{Code: database.ForeignKeyViolation})

		err := repo.Delete(context.Background(), 4)
		assert.True(t, errors.Is(err, http.StatusConflict))
	})

	t.Run("missing", func(t *testing.T) {
		setup()
		mock.ExpectExec(query).WithArgs(5).WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 5)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}
