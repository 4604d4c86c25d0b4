package request

import "github.com/shopspring/decimal"

type RequestRefund struct {
	BookingID int64           `json:"booking_id" validate:"required,gt=0"`
	PaymentID int64           `json:"payment_id" validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason" validate:"max=500"`
}
