package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/location/models/entity"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindAll(ctx context.Context) ([]entity.Location, error)
	FindByID(ctx context.Context, locationID int64) (entity.Location, error)
	Insert(ctx context.Context, location entity.Location) (entity.Location, error)
	Update(ctx context.Context, location entity.Location) error
	Delete(ctx context.Context, locationID int64) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindAll implements Repositories.
func (r *repositories) FindAll(ctx context.Context) ([]entity.Location, error) {
	locations := []entity.Location{}
	if err := r.db.SelectContext(ctx, &locations, `SELECT id, name, address FROM locations ORDER BY name`); err != nil {
		r.log.Error(ctx, "error find locations", err)
		return nil, errors.InternalServerError("error find locations")
	}
	return locations, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, locationID int64) (entity.Location, error) {
	var location entity.Location
	err := r.db.GetContext(ctx, &location, `SELECT id, name, address FROM locations WHERE id = $1`, locationID)
	if err == sql.ErrNoRows {
		return entity.Location{}, errors.NotFound(fmt.Sprintf("location %d not found", locationID))
	}
	if err != nil {
		r.log.Error(ctx, "error find location by id", err)
		return entity.Location{}, errors.InternalServerError("error find location by id")
	}
	return location, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, location entity.Location) (entity.Location, error) {
	err := r.db.GetContext(ctx, &location.ID, `INSERT INTO locations (name, address) VALUES ($1, $2) RETURNING id`,
		location.Name, location.Address)
	if err != nil {
		r.log.Error(ctx, "error insert location", err)
		return entity.Location{}, errors.InternalServerError("error insert location")
	}
	return location, nil
}

// Update implements Repositories.
func (r *repositories) Update(ctx context.Context, location entity.Location) error {
	res, err := r.db.ExecContext(ctx, `UPDATE locations SET name = $1, address = $2 WHERE id = $3`,
		location.Name, location.Address, location.ID)
	if err != nil {
		r.log.Error(ctx, "error update location", err)
		return errors.InternalServerError("error update location")
	}
	return expectOne(res, location.ID)
}

// Delete implements Repositories.
func (r *repositories) Delete(ctx context.Context, locationID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, locationID)
	if database.IsPgError(err, database.ForeignKeyViolation) {
		return errors.Conflict(fmt.Sprintf("location %d is used by bookings", locationID))
	}
	if err != nil {
		r.log.Error(ctx, "error delete location", err)
		return errors.InternalServerError("error delete location")
	}
	return expectOne(res, locationID)
}

func expectOne(res sql.Result, locationID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("location %d not found", locationID))
	}
	return nil
}
