package request

type CreateReview struct {
	BookingID int64  `json:"booking_id" validate:"required,gt=0"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" validate:"max=1000"`
}

type UpdateReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"max=1000"`
}
