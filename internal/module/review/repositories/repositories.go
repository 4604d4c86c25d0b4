package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/review/models/entity"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const reviewSelect = `SELECT id, booking_id, user_id, car_id, rating, comment, created_at FROM reviews`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindBooking(ctx context.Context, bookingID int64) (entity.ReviewedBooking, error)
	Exists(ctx context.Context, bookingID, userID int64) (bool, error)
	Insert(ctx context.Context, review entity.Review) (entity.Review, error)
	FindByID(ctx context.Context, reviewID int64) (entity.Review, error)
	Update(ctx context.Context, review entity.Review) error
	Delete(ctx context.Context, reviewID int64) error
	FindByCarID(ctx context.Context, carID int64) ([]entity.Review, error)
	FindByUserID(ctx context.Context, userID int64) ([]entity.Review, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindBooking implements Repositories.
func (r *repositories) FindBooking(ctx context.Context, bookingID int64) (entity.ReviewedBooking, error) {
	var booking entity.ReviewedBooking
	err := r.db.GetContext(ctx, &booking, `SELECT id, user_id, car_id, dropoff_at FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.ReviewedBooking{}, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking for review", err)
		return entity.ReviewedBooking{}, errors.InternalServerError("error find booking")
	}
	return booking, nil
}

// Exists implements Repositories.
func (r *repositories) Exists(ctx context.Context, bookingID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1 AND user_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, bookingID, userID); err != nil {
		r.log.Error(ctx, "error check review", err)
		return false, errors.InternalServerError("error check review")
	}
	return exists, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, review entity.Review) (entity.Review, error) {
	query := `INSERT INTO reviews (booking_id, user_id, car_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.GetContext(ctx, &review.ID, query,
		review.BookingID, review.UserID, review.CarID, review.Rating, review.Comment, review.CreatedAt)
	if database.IsPgError(err, database.UniqueViolation) {
		return entity.Review{}, errors.BadRequest("You have already reviewed this booking.")
	}
	if err != nil {
		r.log.Error(ctx, "error insert review", err)
		return entity.Review{}, errors.InternalServerError("error insert review")
	}
	return review, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, reviewID int64) (entity.Review, error) {
	var review entity.Review
	err := r.db.GetContext(ctx, &review, reviewSelect+` WHERE id = $1`, reviewID)
	if err == sql.ErrNoRows {
		return entity.Review{}, errors.NotFound(fmt.Sprintf("review %d not found", reviewID))
	}
	if err != nil {
		r.log.Error(ctx, "error find review by id", err)
		return entity.Review{}, errors.InternalServerError("error find review by id")
	}
	return review, nil
}

// Update implements Repositories.
func (r *repositories) Update(ctx context.Context, review entity.Review) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reviews SET rating = $1, comment = $2 WHERE id = $3`, review.Rating, review.Comment, review.ID)
	if err != nil {
		r.log.Error(ctx, "error update review", err)
		return errors.InternalServerError("error update review")
	}
	return expectOne(res, review.ID)
}

// Delete implements Repositories.
func (r *repositories) Delete(ctx context.Context, reviewID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		r.log.Error(ctx, "error delete review", err)
		return errors.InternalServerError("error delete review")
	}
	return expectOne(res, reviewID)
}

// FindByCarID implements Repositories.
func (r *repositories) FindByCarID(ctx context.Context, carID int64) ([]entity.Review, error) {
	reviews := []entity.Review{}
	if err := r.db.SelectContext(ctx, &reviews, reviewSelect+` WHERE car_id = $1 ORDER BY created_at DESC`, carID); err != nil {
		r.log.Error(ctx, "error find reviews by car", err)
		return nil, errors.InternalServerError("error find reviews")
	}
	return reviews, nil
}

// FindByUserID implements Repositories.
func (r *repositories) FindByUserID(ctx context.Context, userID int64) ([]entity.Review, error) {
	reviews := []entity.Review{}
	if err := r.db.SelectContext(ctx, &reviews, reviewSelect+` WHERE user_id = $1 ORDER BY created_at DESC`, userID); err != nil {
		r.log.Error(ctx, "error find reviews by user", err)
		return nil, errors.InternalServerError("error find reviews")
	}
	return reviews, nil
}

func expectOne(res sql.Result, reviewID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("review %d not found", reviewID))
	}
	return nil
}
