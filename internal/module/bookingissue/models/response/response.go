package response

import "time"

type BookingIssue struct {
	ID          int64     `json:"issue_id"`
	BookingID   int64     `json:"booking_id"`
	UserID      int64     `json:"user_id"`
	IssueType   string    `json:"issue_type,omitempty"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
