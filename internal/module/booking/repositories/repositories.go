package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/booking/models/entity"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const detailSelect = `
	SELECT b.id, b.user_id, b.car_id, b.pickup_location_id, b.dropoff_location_id,
		b.pickup_at, b.dropoff_at, b.status_id, b.total_amount, b.booked_at,
		c.model_name AS car_name,
		pl.name AS pickup_location_name,
		dl.name AS dropoff_location_name,
		s.name AS status_name
	FROM bookings b
	JOIN cars c ON c.id = b.car_id
	JOIN locations pl ON pl.id = b.pickup_location_id
	JOIN locations dl ON dl.id = b.dropoff_location_id
	JOIN booking_statuses s ON s.id = b.status_id`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindCarRate(ctx context.Context, carID int64) (entity.CarRate, error)
	LocationExists(ctx context.Context, locationID int64) (bool, error)
	FindBlockingBookings(ctx context.Context, carID int64, statusIDs []int64) ([]entity.Booking, error)
	// CreateBooking inserts under a lock on the car row after re-checking that
	// no blocking booking overlaps the window.
	CreateBooking(ctx context.Context, booking entity.Booking, blockingStatusIDs []int64) (entity.Booking, error)
	FindBookingByID(ctx context.Context, bookingID int64) (entity.Booking, error)
	FindBookingDetailByID(ctx context.Context, bookingID int64) (entity.BookingDetail, error)
	FindBookingDetailsByUserID(ctx context.Context, userID int64) ([]entity.BookingDetail, error)
	FindAllBookingDetails(ctx context.Context) ([]entity.BookingDetail, error)
	// UpdateBookingStatus only applies while the booking is still in fromStatusID.
	UpdateBookingStatus(ctx context.Context, bookingID, fromStatusID, toStatusID int64) error
	HasSuccessfulPayment(ctx context.Context, bookingID int64) (bool, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindCarRate implements Repositories.
func (r *repositories) FindCarRate(ctx context.Context, carID int64) (entity.CarRate, error) {
	query := `SELECT id, model_name, daily_rate FROM cars WHERE id = $1`
	var car entity.CarRate
	err := r.db.GetContext(ctx, &car, query, carID)
	if err == sql.ErrNoRows {
		return entity.CarRate{}, errors.NotFound(fmt.Sprintf("car %d not found", carID))
	}
	if err != nil {
		r.log.Error(ctx, "error find car rate", err)
		return entity.CarRate{}, errors.InternalServerError("error find car rate")
	}
	return car, nil
}

// LocationExists implements Repositories.
func (r *repositories) LocationExists(ctx context.Context, locationID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM locations WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, locationID); err != nil {
		r.log.Error(ctx, "error check location", err)
		return false, errors.InternalServerError("error check location")
	}
	return exists, nil
}

// FindBlockingBookings implements Repositories.
func (r *repositories) FindBlockingBookings(ctx context.Context, carID int64, statusIDs []int64) ([]entity.Booking, error) {
	query := `SELECT id, user_id, car_id, pickup_location_id, dropoff_location_id, pickup_at, dropoff_at, status_id, total_amount, booked_at
		FROM bookings WHERE car_id = $1 AND status_id = ANY($2)`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, carID, pq.Array(statusIDs)); err != nil {
		r.log.Error(ctx, "error find blocking bookings", err)
		return nil, errors.InternalServerError("error find blocking bookings")
	}
	return bookings, nil
}

// CreateBooking implements Repositories.
func (r *repositories) CreateBooking(ctx context.Context, booking entity.Booking, blockingStatusIDs []int64) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	// Lock the car row so concurrent inserts for the same car serialise here.
	var carID int64
	err = tx.GetContext(ctx, &carID, `SELECT id FROM cars WHERE id = $1 FOR UPDATE`, booking.CarID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("car not found")
	}
	if err != nil {
		r.log.Error(ctx, "error locking car row", err)
		return entity.Booking{}, errors.InternalServerError("error locking rows")
	}

	var overlapping int
	err = tx.GetContext(ctx, &overlapping, `SELECT COUNT(1) FROM bookings
		WHERE car_id = $1 AND status_id = ANY($2) AND pickup_at < $3 AND dropoff_at > $4`,
		booking.CarID, pq.Array(blockingStatusIDs), booking.DropoffAt, booking.PickupAt)
	if err != nil {
		r.log.Error(ctx, "error re-check availability", err)
		return entity.Booking{}, errors.InternalServerError("error check availability")
	}
	if overlapping > 0 {
		return entity.Booking{}, errors.CarUnavailable("car is not available for the selected dates")
	}

	err = tx.GetContext(ctx, &booking.ID, `INSERT INTO bookings
		(user_id, car_id, pickup_location_id, dropoff_location_id, pickup_at, dropoff_at, status_id, total_amount, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		booking.UserID, booking.CarID, booking.PickupLocationID, booking.DropoffLocationID,
		booking.PickupAt, booking.DropoffAt, booking.StatusID, booking.TotalAmount, booking.BookedAt)
	if err != nil {
		r.log.Error(ctx, "error insert booking", err)
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID int64) (entity.Booking, error) {
	query := `SELECT id, user_id, car_id, pickup_location_id, dropoff_location_id, pickup_at, dropoff_at, status_id, total_amount, booked_at
		FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingDetailByID implements Repositories.
func (r *repositories) FindBookingDetailByID(ctx context.Context, bookingID int64) (entity.BookingDetail, error) {
	var detail entity.BookingDetail
	err := r.db.GetContext(ctx, &detail, detailSelect+` WHERE b.id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.BookingDetail{}, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking detail", err)
		return entity.BookingDetail{}, errors.InternalServerError("error find booking detail")
	}
	return detail, nil
}

// FindBookingDetailsByUserID implements Repositories.
func (r *repositories) FindBookingDetailsByUserID(ctx context.Context, userID int64) ([]entity.BookingDetail, error) {
	details := []entity.BookingDetail{}
	err := r.db.SelectContext(ctx, &details, detailSelect+` WHERE b.user_id = $1 ORDER BY b.booked_at DESC`, userID)
	if err != nil {
		r.log.Error(ctx, "error find booking by user id", err)
		return nil, errors.InternalServerError("error find booking by user id")
	}
	return details, nil
}

// FindAllBookingDetails implements Repositories.
func (r *repositories) FindAllBookingDetails(ctx context.Context) ([]entity.BookingDetail, error) {
	details := []entity.BookingDetail{}
	err := r.db.SelectContext(ctx, &details, detailSelect+` ORDER BY b.booked_at DESC`)
	if err != nil {
		r.log.Error(ctx, "error find bookings", err)
		return nil, errors.InternalServerError("error find bookings")
	}
	return details, nil
}

// UpdateBookingStatus implements Repositories.
func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID, fromStatusID, toStatusID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status_id = $1 WHERE id = $2 AND status_id = $3`,
		toStatusID, bookingID, fromStatusID)
	if err != nil {
		r.log.Error(ctx, "error update booking status", err)
		return errors.InternalServerError("error update booking status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update booking status")
	}
	if affected == 0 {
		return errors.BadRequest(fmt.Sprintf("booking %d changed status, reload and try again", bookingID))
	}
	return nil
}

// HasSuccessfulPayment implements Repositories.
func (r *repositories) HasSuccessfulPayment(ctx context.Context, bookingID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1 AND status = 'Success')`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, bookingID); err != nil {
		r.log.Error(ctx, "error check payment", err)
		return false, errors.InternalServerError("error check payment")
	}
	return exists, nil
}

// DeleteBooking implements Repositories.
func (r *repositories) DeleteBooking(ctx context.Context, bookingID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		r.log.Error(ctx, "error delete booking", err)
		return errors.InternalServerError("error delete booking")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error delete booking")
	}
	if affected == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}
