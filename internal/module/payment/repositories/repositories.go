package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/payment/models/entity"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"

	"github.com/jmoiron/sqlx"
)

const detailSelect = `
	SELECT p.id, p.booking_id, p.method_id, p.amount, p.status, p.transaction_id, p.paid_at,
		m.name AS method_name,
		b.user_id
	FROM payments p
	JOIN payment_methods m ON m.id = p.method_id
	JOIN bookings b ON b.id = p.booking_id`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindPayableBooking(ctx context.Context, bookingID int64) (entity.PayableBooking, error)
	MethodExists(ctx context.Context, methodID int64) (bool, error)
	HasSuccessfulPayment(ctx context.Context, bookingID int64) (bool, error)
	// CreatePayment re-checks for a successful payment while holding the booking row.
	CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	FindByID(ctx context.Context, paymentID int64) (entity.PaymentDetail, error)
	FindByUserID(ctx context.Context, userID int64) ([]entity.PaymentDetail, error)
	FindAll(ctx context.Context) ([]entity.PaymentDetail, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindPayableBooking implements Repositories.
func (r *repositories) FindPayableBooking(ctx context.Context, bookingID int64) (entity.PayableBooking, error) {
	var booking entity.PayableBooking
	err := r.db.GetContext(ctx, &booking, `SELECT id, user_id, status_id, total_amount FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.PayableBooking{}, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking for payment", err)
		return entity.PayableBooking{}, errors.InternalServerError("error find booking")
	}
	return booking, nil
}

// MethodExists implements Repositories.
func (r *repositories) MethodExists(ctx context.Context, methodID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM payment_methods WHERE id = $1)`, methodID); err != nil {
		r.log.Error(ctx, "error check payment method", err)
		return false, errors.InternalServerError("error check payment method")
	}
	return exists, nil
}

// HasSuccessfulPayment implements Repositories.
func (r *repositories) HasSuccessfulPayment(ctx context.Context, bookingID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1 AND status = $2)`
	if err := r.db.GetContext(ctx, &exists, query, bookingID, lookup.PaymentSuccess); err != nil {
		r.log.Error(ctx, "error check successful payment", err)
		return false, errors.InternalServerError("error check payment")
	}
	return exists, nil
}

// CreatePayment implements Repositories.
func (r *repositories) CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error begin transaction", err)
		return entity.Payment{}, errors.InternalServerError("error begin transaction")
	}
	defer tx.Rollback()

	var bookingID int64
	err = tx.GetContext(ctx, &bookingID, `SELECT id FROM bookings WHERE id = $1 FOR UPDATE`, payment.BookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound(fmt.Sprintf("booking %d not found", payment.BookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error lock booking", err)
		return entity.Payment{}, errors.InternalServerError("error lock booking")
	}

	if payment.Status == lookup.PaymentSuccess {
		var paid bool
		query := `SELECT EXISTS (SELECT 1 FROM payments WHERE booking_id = $1 AND status = $2)`
		if err := tx.GetContext(ctx, &paid, query, payment.BookingID, lookup.PaymentSuccess); err != nil {
			r.log.Error(ctx, "error check successful payment", err)
			return entity.Payment{}, errors.InternalServerError("error check payment")
		}
		if paid {
			return entity.Payment{}, errors.BadRequest("This booking already has a successful payment.")
		}
	}

	query := `INSERT INTO payments (booking_id, method_id, amount, status, transaction_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.GetContext(ctx, &payment.ID, query,
		payment.BookingID, payment.MethodID, payment.Amount, payment.Status, payment.TransactionID, payment.PaidAt)
	if database.IsPgError(err, database.UniqueViolation) {
		return entity.Payment{}, errors.BadRequest("This booking already has a successful payment.")
	}
	if err != nil {
		r.log.Error(ctx, "error insert payment", err)
		return entity.Payment{}, errors.InternalServerError("error insert payment")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error commit payment", err)
		return entity.Payment{}, errors.InternalServerError("error commit payment")
	}
	return payment, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, paymentID int64) (entity.PaymentDetail, error) {
	var payment entity.PaymentDetail
	err := r.db.GetContext(ctx, &payment, detailSelect+` WHERE p.id = $1`, paymentID)
	if err == sql.ErrNoRows {
		return entity.PaymentDetail{}, errors.NotFound(fmt.Sprintf("payment %d not found", paymentID))
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by id", err)
		return entity.PaymentDetail{}, errors.InternalServerError("error find payment by id")
	}
	return payment, nil
}

// FindByUserID implements Repositories.
func (r *repositories) FindByUserID(ctx context.Context, userID int64) ([]entity.PaymentDetail, error) {
	payments := []entity.PaymentDetail{}
	if err := r.db.SelectContext(ctx, &payments, detailSelect+` WHERE b.user_id = $1 ORDER BY p.paid_at DESC`, userID); err != nil {
		r.log.Error(ctx, "error find payments by user", err)
		return nil, errors.InternalServerError("error find payments")
	}
	return payments, nil
}

// FindAll implements Repositories.
func (r *repositories) FindAll(ctx context.Context) ([]entity.PaymentDetail, error) {
	payments := []entity.PaymentDetail{}
	if err := r.db.SelectContext(ctx, &payments, detailSelect+` ORDER BY p.paid_at DESC`); err != nil {
		r.log.Error(ctx, "error find payments", err)
		return nil, errors.InternalServerError("error find payments")
	}
	return payments, nil
}
