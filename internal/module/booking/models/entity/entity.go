package entity

import (
	"time"

	"rental-service/internal/pkg/availability"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	CarID             int64           `db:"car_id"`
	PickupLocationID  int64           `db:"pickup_location_id"`
	DropoffLocationID int64           `db:"dropoff_location_id"`
	PickupAt          time.Time       `db:"pickup_at"`
	DropoffAt         time.Time       `db:"dropoff_at"`
	StatusID          int64           `db:"status_id"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	BookedAt          time.Time       `db:"booked_at"`
}

func (b Booking) Window() availability.Window {
	return availability.Window{From: b.PickupAt, To: b.DropoffAt}
}

// BookingDetail is a Booking joined with the display names of its references.
type BookingDetail struct {
	Booking
	CarName             string `db:"car_name"`
	PickupLocationName  string `db:"pickup_location_name"`
	DropoffLocationName string `db:"dropoff_location_name"`
	StatusName          string `db:"status_name"`
}

// CarRate is the slice of a car a quote needs.
type CarRate struct {
	ID        int64           `db:"id"`
	ModelName string          `db:"model_name"`
	DailyRate decimal.Decimal `db:"daily_rate"`
}
