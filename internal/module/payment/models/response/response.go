package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64           `json:"payment_id"`
	BookingID     int64           `json:"booking_id"`
	MethodID      int64           `json:"method_id"`
	MethodName    string          `json:"method_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"payment_status"`
	TransactionID string          `json:"transaction_id"`
	PaidAt        time.Time       `json:"paid_at"`
}
