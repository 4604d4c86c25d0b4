package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rental-service/internal/module/refund/models/entity"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const refundSelect = `SELECT id, booking_id, payment_id, user_id, amount, reason, status, requested_at, processed_at FROM refunds`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindBookingOwner(ctx context.Context, bookingID int64) (int64, error)
	FindPayment(ctx context.Context, paymentID int64) (entity.RefundablePayment, error)
	HasOpenRefund(ctx context.Context, paymentID int64) (bool, error)
	Insert(ctx context.Context, refund entity.Refund) (entity.Refund, error)
	FindByID(ctx context.Context, refundID int64) (entity.Refund, error)
	FindByUserID(ctx context.Context, userID int64) ([]entity.Refund, error)
	FindAll(ctx context.Context) ([]entity.Refund, error)
	// Approve marks the refund and its payment Refunded in one transaction.
	Approve(ctx context.Context, refundID int64, processedAt time.Time) error
	Reject(ctx context.Context, refundID int64, processedAt time.Time) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindBookingOwner implements Repositories.
func (r *repositories) FindBookingOwner(ctx context.Context, bookingID int64) (int64, error) {
	var userID int64
	err := r.db.GetContext(ctx, &userID, `SELECT user_id FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return 0, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking owner", err)
		return 0, errors.InternalServerError("error find booking")
	}
	return userID, nil
}

// FindPayment implements Repositories.
func (r *repositories) FindPayment(ctx context.Context, paymentID int64) (entity.RefundablePayment, error) {
	var payment entity.RefundablePayment
	err := r.db.GetContext(ctx, &payment, `SELECT id, booking_id, amount, status FROM payments WHERE id = $1`, paymentID)
	if err == sql.ErrNoRows {
		return entity.RefundablePayment{}, errors.NotFound(fmt.Sprintf("payment %d not found", paymentID))
	}
	if err != nil {
		r.log.Error(ctx, "error find payment", err)
		return entity.RefundablePayment{}, errors.InternalServerError("error find payment")
	}
	return payment, nil
}

// HasOpenRefund implements Repositories.
func (r *repositories) HasOpenRefund(ctx context.Context, paymentID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM refunds WHERE payment_id = $1 AND status = ANY($2))`
	statuses := []string{lookup.RefundPending, lookup.RefundRefunded}
	if err := r.db.GetContext(ctx, &exists, query, paymentID, pq.Array(statuses)); err != nil {
		r.log.Error(ctx, "error check open refund", err)
		return false, errors.InternalServerError("error check refund")
	}
	return exists, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, refund entity.Refund) (entity.Refund, error) {
	query := `INSERT INTO refunds (booking_id, payment_id, user_id, amount, reason, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.GetContext(ctx, &refund.ID, query,
		refund.BookingID, refund.PaymentID, refund.UserID, refund.Amount, refund.Reason, refund.Status, refund.RequestedAt)
	if database.IsPgError(err, database.UniqueViolation) {
		return entity.Refund{}, errors.BadRequest("There is already a pending or completed refund for this payment.")
	}
	if err != nil {
		r.log.Error(ctx, "error insert refund", err)
		return entity.Refund{}, errors.InternalServerError("error insert refund")
	}
	return refund, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, refundID int64) (entity.Refund, error) {
	var refund entity.Refund
	err := r.db.GetContext(ctx, &refund, refundSelect+` WHERE id = $1`, refundID)
	if err == sql.ErrNoRows {
		return entity.Refund{}, errors.NotFound(fmt.Sprintf("refund %d not found", refundID))
	}
	if err != nil {
		r.log.Error(ctx, "error find refund by id", err)
		return entity.Refund{}, errors.InternalServerError("error find refund by id")
	}
	return refund, nil
}

// FindByUserID implements Repositories.
func (r *repositories) FindByUserID(ctx context.Context, userID int64) ([]entity.Refund, error) {
	refunds := []entity.Refund{}
	if err := r.db.SelectContext(ctx, &refunds, refundSelect+` WHERE user_id = $1 ORDER BY requested_at DESC`, userID); err != nil {
		r.log.Error(ctx, "error find refunds by user", err)
		return nil, errors.InternalServerError("error find refunds")
	}
	return refunds, nil
}

// FindAll implements Repositories.
func (r *repositories) FindAll(ctx context.Context) ([]entity.Refund, error) {
	refunds := []entity.Refund{}
	if err := r.db.SelectContext(ctx, &refunds, refundSelect+` ORDER BY requested_at DESC`); err != nil {
		r.log.Error(ctx, "error find refunds", err)
		return nil, errors.InternalServerError("error find refunds")
	}
	return refunds, nil
}

// Approve implements Repositories.
func (r *repositories) Approve(ctx context.Context, refundID int64, processedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error begin transaction", err)
		return errors.InternalServerError("error begin transaction")
	}
	defer tx.Rollback()

	var paymentID int64
	query := `UPDATE refunds SET status = $1, processed_at = $2 WHERE id = $3 AND status = $4 RETURNING payment_id`
	err = tx.GetContext(ctx, &paymentID, query, lookup.RefundRefunded, processedAt, refundID, lookup.RefundPending)
	if err == sql.ErrNoRows {
		return errors.BadRequest("Only pending refunds can be approved.")
	}
	if err != nil {
		r.log.Error(ctx, "error approve refund", err)
		return errors.InternalServerError("error approve refund")
	}

	if _, err := tx.ExecContext(ctx, `UPDATE payments SET status = $1 WHERE id = $2`, lookup.PaymentRefunded, paymentID); err != nil {
		r.log.Error(ctx, "error mark payment refunded", err)
		return errors.InternalServerError("error mark payment refunded")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error commit refund approval", err)
		return errors.InternalServerError("error commit refund approval")
	}
	return nil
}

// Reject implements Repositories.
func (r *repositories) Reject(ctx context.Context, refundID int64, processedAt time.Time) error {
	query := `UPDATE refunds SET status = $1, processed_at = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, lookup.RefundRejected, processedAt, refundID, lookup.RefundPending)
	if err != nil {
		r.log.Error(ctx, "error reject refund", err)
		return errors.InternalServerError("error reject refund")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.BadRequest("Only pending refunds can be rejected.")
	}
	return nil
}
