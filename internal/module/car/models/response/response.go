package response

import "github.com/shopspring/decimal"

type Car struct {
	ID           int64           `json:"car_id"`
	BrandID      int64           `json:"brand_id"`
	BrandName    string          `json:"brand_name"`
	ModelName    string          `json:"model_name"`
	Year         *int            `json:"year"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	Seats        *int            `json:"seats"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	StatusID     int64           `json:"status_id"`
	StatusName   string          `json:"status_name"`
	ImageURL     string          `json:"image_url,omitempty"`
	Description  string          `json:"description,omitempty"`
}
