package entity

import "time"

type Review struct {
	ID        int64     `db:"id"`
	BookingID int64     `db:"booking_id"`
	UserID    int64     `db:"user_id"`
	CarID     int64     `db:"car_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

type ReviewedBooking struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	CarID     int64     `db:"car_id"`
	DropoffAt time.Time `db:"dropoff_at"`
}
