package request

import "time"

type Quote struct {
	CarID int64     `json:"car_id" validate:"required,gt=0"`
	From  time.Time `json:"from" validate:"required"`
	To    time.Time `json:"to" validate:"required"`
}

type CreateBooking struct {
	CarID             int64     `json:"car_id" validate:"required,gt=0"`
	PickupLocationID  int64     `json:"pickup_location_id" validate:"required,gt=0"`
	DropoffLocationID int64     `json:"dropoff_location_id" validate:"required,gt=0"`
	PickupAt          time.Time `json:"pickup_at" validate:"required"`
	DropoffAt         time.Time `json:"dropoff_at" validate:"required"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
}
