package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rental-service/internal/module/maintenance/models/entity"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const requestSelect = `SELECT id, car_id, reported_by_id, issue_description, reported_at, is_resolved FROM maintenance_requests`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	CarExists(ctx context.Context, carID int64) (bool, error)
	// HasRecentBooking reports a booking of carID by userID with pickup <= until and dropoff >= since.
	HasRecentBooking(ctx context.Context, userID, carID int64, since, until time.Time) (bool, error)
	Insert(ctx context.Context, req entity.MaintenanceRequest) (entity.MaintenanceRequest, error)
	FindByID(ctx context.Context, requestID int64) (entity.MaintenanceRequest, error)
	Resolve(ctx context.Context, requestID int64) error
	FindOpen(ctx context.Context) ([]entity.MaintenanceRequest, error)
	FindByCarID(ctx context.Context, carID int64) ([]entity.MaintenanceRequest, error)
	FindByReporter(ctx context.Context, userID int64) ([]entity.MaintenanceRequest, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CarExists implements Repositories.
func (r *repositories) CarExists(ctx context.Context, carID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`, carID); err != nil {
		r.log.Error(ctx, "error check car", err)
		return false, errors.InternalServerError("error check car")
	}
	return exists, nil
}

// HasRecentBooking implements Repositories.
func (r *repositories) HasRecentBooking(ctx context.Context, userID, carID int64, since, until time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings
		WHERE user_id = $1 AND car_id = $2 AND pickup_at <= $3 AND dropoff_at >= $4)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, carID, until, since); err != nil {
		r.log.Error(ctx, "error check recent booking", err)
		return false, errors.InternalServerError("error check recent booking")
	}
	return exists, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, req entity.MaintenanceRequest) (entity.MaintenanceRequest, error) {
	query := `INSERT INTO maintenance_requests (car_id, reported_by_id, issue_description, reported_at, is_resolved)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.GetContext(ctx, &req.ID, query, req.CarID, req.ReportedByID, req.IssueDescription, req.ReportedAt, req.IsResolved)
	if err != nil {
		r.log.Error(ctx, "error insert maintenance request", err)
		return entity.MaintenanceRequest{}, errors.InternalServerError("error insert maintenance request")
	}
	return req, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, requestID int64) (entity.MaintenanceRequest, error) {
	var req entity.MaintenanceRequest
	err := r.db.GetContext(ctx, &req, requestSelect+` WHERE id = $1`, requestID)
	if err == sql.ErrNoRows {
		return entity.MaintenanceRequest{}, errors.NotFound(fmt.Sprintf("maintenance request %d not found", requestID))
	}
	if err != nil {
		r.log.Error(ctx, "error find maintenance request", err)
		return entity.MaintenanceRequest{}, errors.InternalServerError("error find maintenance request")
	}
	return req, nil
}

// Resolve implements Repositories. Only an unresolved request is flipped.
func (r *repositories) Resolve(ctx context.Context, requestID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE maintenance_requests SET is_resolved = TRUE WHERE id = $1 AND is_resolved = FALSE`, requestID)
	if err != nil {
		r.log.Error(ctx, "error resolve maintenance request", err)
		return errors.InternalServerError("error resolve maintenance request")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.BadRequest("Request is already resolved.")
	}
	return nil
}

// FindOpen implements Repositories.
func (r *repositories) FindOpen(ctx context.Context) ([]entity.MaintenanceRequest, error) {
	return r.list(ctx, requestSelect+` WHERE is_resolved = FALSE ORDER BY reported_at DESC`)
}

// FindByCarID implements Repositories.
func (r *repositories) FindByCarID(ctx context.Context, carID int64) ([]entity.MaintenanceRequest, error) {
	return r.list(ctx, requestSelect+` WHERE car_id = $1 ORDER BY reported_at DESC`, carID)
}

// FindByReporter implements Repositories.
func (r *repositories) FindByReporter(ctx context.Context, userID int64) ([]entity.MaintenanceRequest, error) {
	return r.list(ctx, requestSelect+` WHERE reported_by_id = $1 ORDER BY reported_at DESC`, userID)
}

func (r *repositories) list(ctx context.Context, query string, args ...interface{}) ([]entity.MaintenanceRequest, error) {
	reqs := []entity.MaintenanceRequest{}
	if err := r.db.SelectContext(ctx, &reqs, query, args...); err != nil {
		r.log.Error(ctx, "error find maintenance requests", err)
		return nil, errors.InternalServerError("error find maintenance requests")
	}
	return reqs, nil
}
