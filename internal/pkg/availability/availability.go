package availability

import (
	"time"

	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/lookup"
)

// BlockingStatuses are the booking states that hold a car for their window.
var BlockingStatuses = []string{
	lookup.BookingPending,
	lookup.BookingConfirmed,
	lookup.BookingCheckedOut,
}

// Window is a half-open [From, To) rental period.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Validate() error {
	if !w.To.After(w.From) {
		return errors.BadRequest("to must be after from")
	}
	return nil
}

// Overlaps uses open-interval intersection, so back-to-back windows do not collide.
func Overlaps(existing, requested Window) bool {
	return existing.From.Before(requested.To) && existing.To.After(requested.From)
}

// BlockingIDs resolves BlockingStatuses against the loaded status table.
func BlockingIDs(l *lookup.Lookups) ([]int64, error) {
	return l.BookingStatuses.IDs(BlockingStatuses...)
}
