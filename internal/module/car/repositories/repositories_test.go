package repositories_test

import (
	"context"
	"regexp"
	"testing"

	"rental-service/internal/module/car/models/entity"
	"rental-service/internal/module/car/repositories"
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

var carColumns = []string{"id", "brand_id", "model_name", "daily_rate", "status_id", "brand_name", "status_name"}

func TestSearch(t *testing.T) {
	t.Run("explicit zero filters still apply", func(t *testing.T) {
		setup()
		seats := 0
		rate := decimal.Zero

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.seats >= $1 AND c.daily_rate <= $2 ORDER BY c.id`)).
			WithArgs(0, sqlxmock.AnyArg()).
			WillReturnRows(sqlxmock.NewRows(carColumns))

		cars, err := repo.Search(context.Background(), entity.SearchFilter{MinSeats: &seats, MaxDailyRate: &rate})
		assert.NoError(t, err)
		assert.Empty(t, cars)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unset filters are skipped", func(t *testing.T) {
		setup()

		mock.ExpectQuery(regexp.QuoteMeta(`JOIN car_statuses s ON s.id = c.status_id WHERE c.fuel_type = $1 ORDER BY c.id`)).
			WithArgs("Petrol").
			WillReturnRows(sqlxmock.NewRows(carColumns).AddRow(5, 1, "Corolla", "45.00", 1, "Toyota", "Available"))

		cars, err := repo.Search(context.Background(), entity.SearchFilter{FuelType: "Petrol"})
		assert.NoError(t, err)
		assert.Len(t, cars, 1)
		assert.True(t, cars[0].DailyRate.Equal(decimal.NewFromInt(45)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
