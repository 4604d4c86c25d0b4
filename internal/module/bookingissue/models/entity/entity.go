package entity

import (
	"strings"
	"time"
)

const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
)

var statuses = []string{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// CanonicalStatus matches s case-insensitively against the issue vocabulary.
func CanonicalStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, status := range statuses {
		if strings.EqualFold(s, status) {
			return status, true
		}
	}
	return "", false
}

type BookingIssue struct {
	ID          int64     `db:"id"`
	BookingID   int64     `db:"booking_id"`
	UserID      int64     `db:"user_id"`
	IssueType   string    `db:"issue_type"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}
