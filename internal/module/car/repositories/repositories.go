package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rental-service/internal/module/car/models/entity"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const detailSelect = `
	SELECT c.id, c.brand_id, c.model_name, c.year, c.fuel_type, c.transmission, c.seats,
		c.daily_rate, c.status_id, c.image_url, c.description,
		b.name AS brand_name,
		s.name AS status_name
	FROM cars c
	JOIN car_brands b ON b.id = c.brand_id
	JOIN car_statuses s ON s.id = c.status_id`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindAll(ctx context.Context, brandName string) ([]entity.CarDetail, error)
	FindByID(ctx context.Context, carID int64) (entity.CarDetail, error)
	BrandExists(ctx context.Context, brandID int64) (bool, error)
	// DuplicateExists reports another car with the same brand, model and year.
	DuplicateExists(ctx context.Context, brandID int64, modelName string, year *int, excludeID int64) (bool, error)
	Insert(ctx context.Context, car entity.Car) (int64, error)
	Update(ctx context.Context, car entity.Car) error
	UpdateStatus(ctx context.Context, carID, statusID int64) error
	Delete(ctx context.Context, carID int64) error
	Search(ctx context.Context, filter entity.SearchFilter) ([]entity.CarDetail, error)
	FindBlockingWindows(ctx context.Context, carIDs []int64, statusIDs []int64) ([]entity.BookedWindow, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindAll implements Repositories. An empty brandName returns every car.
func (r *repositories) FindAll(ctx context.Context, brandName string) ([]entity.CarDetail, error) {
	cars := []entity.CarDetail{}
	var err error
	if brandName == "" {
		err = r.db.SelectContext(ctx, &cars, detailSelect+` ORDER BY c.id`)
	} else {
		err = r.db.SelectContext(ctx, &cars, detailSelect+` WHERE b.name ILIKE $1 ORDER BY c.id`, "%"+brandName+"%")
	}
	if err != nil {
		r.log.Error(ctx, "error find cars", err)
		return nil, errors.InternalServerError("error find cars")
	}
	return cars, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, carID int64) (entity.CarDetail, error) {
	var car entity.CarDetail
	err := r.db.GetContext(ctx, &car, detailSelect+` WHERE c.id = $1`, carID)
	if err == sql.ErrNoRows {
		return entity.CarDetail{}, errors.NotFound(fmt.Sprintf("car %d not found", carID))
	}
	if err != nil {
		r.log.Error(ctx, "error find car by id", err)
		return entity.CarDetail{}, errors.InternalServerError("error find car by id")
	}
	return car, nil
}

// BrandExists implements Repositories.
func (r *repositories) BrandExists(ctx context.Context, brandID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM car_brands WHERE id = $1)`, brandID)
	if err != nil {
		r.log.Error(ctx, "error check brand", err)
		return false, errors.InternalServerError("error check brand")
	}
	return exists, nil
}

// DuplicateExists implements Repositories.
func (r *repositories) DuplicateExists(ctx context.Context, brandID int64, modelName string, year *int, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM cars
		WHERE brand_id = $1 AND LOWER(model_name) = LOWER($2) AND year IS NOT DISTINCT FROM $3 AND id <> $4)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, brandID, modelName, year, excludeID); err != nil {
		r.log.Error(ctx, "error check duplicate car", err)
		return false, errors.InternalServerError("error check duplicate car")
	}
	return exists, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, car entity.Car) (int64, error) {
	query := `INSERT INTO cars
		(brand_id, model_name, year, fuel_type, transmission, seats, daily_rate, status_id, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		car.BrandID, car.ModelName, car.Year, car.FuelType, car.Transmission, car.Seats,
		car.DailyRate, car.StatusID, car.ImageURL, car.Description)
	if err != nil {
		r.log.Error(ctx, "error insert car", err)
		return 0, errors.InternalServerError("error insert car")
	}
	return id, nil
}

// Update implements Repositories.
func (r *repositories) Update(ctx context.Context, car entity.Car) error {
	query := `UPDATE cars SET brand_id = $1, model_name = $2, year = $3, fuel_type = $4, transmission = $5,
		seats = $6, daily_rate = $7, status_id = $8, image_url = $9, description = $10
		WHERE id = $11`
	res, err := r.db.ExecContext(ctx, query,
		car.BrandID, car.ModelName, car.Year, car.FuelType, car.Transmission, car.Seats,
		car.DailyRate, car.StatusID, car.ImageURL, car.Description, car.ID)
	if err != nil {
		r.log.Error(ctx, "error update car", err)
		return errors.InternalServerError("error update car")
	}
	return expectOne(res, car.ID)
}

// UpdateStatus implements Repositories.
func (r *repositories) UpdateStatus(ctx context.Context, carID, statusID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cars SET status_id = $1 WHERE id = $2`, statusID, carID)
	if err != nil {
		r.log.Error(ctx, "error update car status", err)
		return errors.InternalServerError("error update car status")
	}
	return expectOne(res, carID)
}

// Delete implements Repositories.
func (r *repositories) Delete(ctx context.Context, carID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, carID)
	if database.IsPgError(err, database.ForeignKeyViolation) {
		return errors.Conflict(fmt.Sprintf("car %d is referenced by bookings or reviews", carID))
	}
	if err != nil {
		r.log.Error(ctx, "error delete car", err)
		return errors.InternalServerError("error delete car")
	}
	return expectOne(res, carID)
}

// Search implements Repositories.
func (r *repositories) Search(ctx context.Context, filter entity.SearchFilter) ([]entity.CarDetail, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.BrandID > 0 {
		add("c.brand_id = $%d", filter.BrandID)
	}
	if filter.FuelType != "" {
		add("c.fuel_type = $%d", filter.FuelType)
	}
	if filter.Transmission != "" {
		add("c.transmission = $%d", filter.Transmission)
	}
	if filter.MinSeats != nil {
		add("c.seats >= $%d", *filter.MinSeats)
	}
	if filter.MaxDailyRate != nil {
		add("c.daily_rate <= $%d", *filter.MaxDailyRate)
	}

	query := detailSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY c.id"

	cars := []entity.CarDetail{}
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		r.log.Error(ctx, "error search cars", err)
		return nil, errors.InternalServerError("error search cars")
	}
	return cars, nil
}

// FindBlockingWindows implements Repositories.
func (r *repositories) FindBlockingWindows(ctx context.Context, carIDs []int64, statusIDs []int64) ([]entity.BookedWindow, error) {
	query := `SELECT car_id, pickup_at, dropoff_at FROM bookings WHERE car_id = ANY($1) AND status_id = ANY($2)`
	windows := []entity.BookedWindow{}
	if err := r.db.SelectContext(ctx, &windows, query, pq.Array(carIDs), pq.Array(statusIDs)); err != nil {
		r.log.Error(ctx, "error find booked windows", err)
		return nil, errors.InternalServerError("error find booked windows")
	}
	return windows, nil
}

func expectOne(res sql.Result, carID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("car %d not found", carID))
	}
	return nil
}
