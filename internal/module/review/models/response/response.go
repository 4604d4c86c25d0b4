package response

import "time"

type Review struct {
	ID        int64     `json:"review_id"`
	BookingID int64     `json:"booking_id"`
	UserID    int64     `json:"user_id"`
	CarID     int64     `json:"car_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
