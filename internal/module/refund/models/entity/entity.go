package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Refund struct {
	ID          int64           `db:"id"`
	BookingID   int64           `db:"booking_id"`
	PaymentID   int64           `db:"payment_id"`
	UserID      int64           `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Reason      string          `db:"reason"`
	Status      string          `db:"status"`
	RequestedAt time.Time       `db:"requested_at"`
	ProcessedAt *time.Time      `db:"processed_at"`
}

// RefundablePayment is the payment a refund is raised against.
type RefundablePayment struct {
	ID        int64           `db:"id"`
	BookingID int64           `db:"booking_id"`
	Amount    decimal.Decimal `db:"amount"`
	Status    string          `db:"status"`
}
