package messagestream

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventBookingExpired   = "booking.expired"
	EventPaymentSucceeded = "payment.succeeded"
	EventRefundRequested  = "refund.requested"
	EventRefundApproved   = "refund.approved"
	EventRefundRejected   = "refund.rejected"
)

// Notification is the payload every module publishes on TopicNotification.
type Notification struct {
	Event     string `json:"event" validate:"required"`
	UserID    int64  `json:"user_id" validate:"required"`
	BookingID int64  `json:"booking_id,omitempty"`
	Subject   string `json:"subject" validate:"required"`
	Body      string `json:"body"`
}
