package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Quote struct {
	Days      int             `json:"days"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Taxes     decimal.Decimal `json:"taxes"`
	Total     decimal.Decimal `json:"total"`
}

type Booking struct {
	ID                  int64           `json:"booking_id"`
	UserID              int64           `json:"user_id"`
	CarID               int64           `json:"car_id"`
	CarName             string          `json:"car_name,omitempty"`
	PickupLocationID    int64           `json:"pickup_location_id"`
	PickupLocationName  string          `json:"pickup_location_name,omitempty"`
	DropoffLocationID   int64           `json:"dropoff_location_id"`
	DropoffLocationName string          `json:"dropoff_location_name,omitempty"`
	PickupAt            time.Time       `json:"pickup_at"`
	DropoffAt           time.Time       `json:"dropoff_at"`
	StatusID            int64           `json:"status_id"`
	StatusName          string          `json:"status_name,omitempty"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	BookedAt            time.Time       `json:"booked_at"`
}
