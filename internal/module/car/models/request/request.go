package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type UpsertCar struct {
	BrandID      int64           `json:"brand_id" validate:"required,gt=0"`
	ModelName    string          `json:"model_name" validate:"required,max=100"`
	Year         *int            `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	FuelType     string          `json:"fuel_type" validate:"max=30"`
	Transmission string          `json:"transmission" validate:"max=30"`
	Seats        *int            `json:"seats" validate:"omitempty,gt=0,lte=100"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	StatusID     int64           `json:"status_id" validate:"required,gt=0"`
	ImageURL     string          `json:"image_url" validate:"omitempty,url"`
	Description  string          `json:"description"`
}

type SetStatus struct {
	StatusID int64 `json:"status_id" validate:"required,gt=0"`
}

type Search struct {
	From         time.Time        `json:"from" validate:"required"`
	To           time.Time        `json:"to" validate:"required"`
	BrandID      int64            `json:"brand_id" validate:"gte=0"`
	FuelType     string           `json:"fuel_type"`
	Transmission string           `json:"transmission"`
	MinSeats     *int             `json:"min_seats" validate:"omitempty,gte=0"`
	MaxDailyRate *decimal.Decimal `json:"max_daily_rate"`
}
