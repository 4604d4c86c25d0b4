package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64           `db:"id"`
	BookingID     int64           `db:"booking_id"`
	MethodID      int64           `db:"method_id"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	TransactionID string          `db:"transaction_id"`
	PaidAt        time.Time       `db:"paid_at"`
}

type PaymentDetail struct {
	Payment
	MethodName string `db:"method_name"`
	UserID     int64  `db:"user_id"`
}

// PayableBooking is the slice of a booking the payment flow needs.
type PayableBooking struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	StatusID    int64           `db:"status_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}
