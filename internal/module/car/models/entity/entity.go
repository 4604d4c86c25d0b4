package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Car struct {
	ID           int64           `db:"id"`
	BrandID      int64           `db:"brand_id"`
	ModelName    string          `db:"model_name"`
	Year         *int            `db:"year"`
	FuelType     string          `db:"fuel_type"`
	Transmission string          `db:"transmission"`
	Seats        *int            `db:"seats"`
	DailyRate    decimal.Decimal `db:"daily_rate"`
	StatusID     int64           `db:"status_id"`
	ImageURL     string          `db:"image_url"`
	Description  string          `db:"description"`
}

type CarDetail struct {
	Car
	BrandName  string `db:"brand_name"`
	StatusName string `db:"status_name"`
}

// SearchFilter holds the optional attribute filters of a search. Empty strings,
// a zero BrandID and nil pointers mean "any".
type SearchFilter struct {
	BrandID      int64
	FuelType     string
	Transmission string
	MinSeats     *int
	MaxDailyRate *decimal.Decimal
}

// BookedWindow is a blocking booking reduced to what availability needs.
type BookedWindow struct {
	CarID     int64     `db:"car_id"`
	PickupAt  time.Time `db:"pickup_at"`
	DropoffAt time.Time `db:"dropoff_at"`
}
