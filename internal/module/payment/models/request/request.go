package request

type Pay struct {
	BookingID int64 `json:"booking_id" validate:"required,gt=0"`
	MethodID  int64 `json:"method_id" validate:"required,gt=0"`
}
