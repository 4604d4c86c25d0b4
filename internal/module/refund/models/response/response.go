package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Refund struct {
	ID          int64           `json:"refund_id"`
	BookingID   int64           `json:"booking_id"`
	PaymentID   int64           `json:"payment_id"`
	UserID      int64           `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason,omitempty"`
	Status      string          `json:"status"`
	RequestedAt time.Time       `json:"requested_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}
