package usecases

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"rental-service/config"
	"rental-service/internal/module/booking/models/entity"
	"rental-service/internal/module/booking/models/request"
	"rental-service/internal/module/booking/models/response"
	"rental-service/internal/module/booking/repositories"
	"rental-service/internal/pkg/availability"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/locker"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
	"rental-service/internal/pkg/messagestream"
	"rental-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"
)

// transitions lists the staff-driven moves between booking statuses.
var transitions = map[string][]string{
	lookup.BookingPending:    {lookup.BookingConfirmed, lookup.BookingCancelled},
	lookup.BookingConfirmed:  {lookup.BookingCheckedOut, lookup.BookingCancelled},
	lookup.BookingCheckedOut: {lookup.BookingCompleted},
}

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publish   message.Publisher
	locker    locker.Locker
	scheduler scheduler.Enqueuer
	lookups   *lookup.Lookups
	cfg       config.BookingConfig
	now       func() time.Time
}

type Usecase interface {
	// http
	Quote(ctx context.Context, payload *request.Quote) (response.Quote, error)
	CreateBooking(ctx context.Context, userID int64, payload *request.CreateBooking) (response.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int64) error
	UpdateStatus(ctx context.Context, bookingID int64, payload *request.UpdateStatus) (response.Booking, error)
	GetMine(ctx context.Context, userID int64) ([]response.Booking, error)
	GetAll(ctx context.Context) ([]response.Booking, error)
	GetByID(ctx context.Context, bookingID int64) (response.Booking, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
	// scheduler
	ExpirePending(ctx context.Context, bookingID int64) error
}

type Option func(*usecase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *usecase) {
		u.now = now
	}
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, locker locker.Locker, enqueuer scheduler.Enqueuer, lookups *lookup.Lookups, cfg config.BookingConfig, opts ...Option) Usecase {
	u := &usecase{
		repo:      repo,
		log:       log,
		publish:   publish,
		locker:    locker,
		scheduler: enqueuer,
		lookups:   lookups,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// PriceQuote bills whole days, at least one, and rounds taxes half-to-even to cents.
func PriceQuote(dailyRate decimal.Decimal, window availability.Window, taxRate decimal.Decimal) response.Quote {
	days := int(math.Ceil(window.To.Sub(window.From).Hours() / 24))
	if days < 1 {
		days = 1
	}

	subtotal := dailyRate.Mul(decimal.NewFromInt(int64(days)))
	taxes := subtotal.Mul(taxRate).RoundBank(2)

	return response.Quote{
		Days:      days,
		DailyRate: dailyRate,
		Subtotal:  subtotal,
		Taxes:     taxes,
		Total:     subtotal.Add(taxes),
	}
}

func (u *usecase) quote(ctx context.Context, carID int64, window availability.Window) (response.Quote, error) {
	if err := window.Validate(); err != nil {
		return response.Quote{}, err
	}

	car, err := u.repo.FindCarRate(ctx, carID)
	if err != nil {
		return response.Quote{}, err
	}

	if !car.DailyRate.IsPositive() {
		return response.Quote{}, errors.BadRequest("daily rate not set for this car")
	}

	return PriceQuote(car.DailyRate, window, decimal.NewFromFloat(u.cfg.TaxRate)), nil
}

func (u *usecase) Quote(ctx context.Context, payload *request.Quote) (response.Quote, error) {
	return u.quote(ctx, payload.CarID, availability.Window{From: payload.From.UTC(), To: payload.To.UTC()})
}

func (u *usecase) CreateBooking(ctx context.Context, userID int64, payload *request.CreateBooking) (response.Booking, error) {
	window := availability.Window{From: payload.PickupAt.UTC(), To: payload.DropoffAt.UTC()}
	if err := window.Validate(); err != nil {
		return response.Booking{}, errors.BadRequest("dropoff must be after pickup")
	}

	for _, locationID := range []int64{payload.PickupLocationID, payload.DropoffLocationID} {
		exists, err := u.repo.LocationExists(ctx, locationID)
		if err != nil {
			return response.Booking{}, err
		}
		if !exists {
			return response.Booking{}, errors.NotFound(fmt.Sprintf("location %d not found", locationID))
		}
	}

	blocking, err := availability.BlockingIDs(u.lookups)
	if err != nil {
		return response.Booking{}, err
	}

	pendingID, err := u.lookups.BookingStatuses.ID(lookup.BookingPending)
	if err != nil {
		return response.Booking{}, err
	}

	unlock, err := u.locker.Lock(ctx, locker.CarKey(payload.CarID))
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	quote, err := u.quote(ctx, payload.CarID, window)
	if err != nil {
		return response.Booking{}, err
	}

	existing, err := u.repo.FindBlockingBookings(ctx, payload.CarID, blocking)
	if err != nil {
		return response.Booking{}, err
	}
	for _, b := range existing {
		if availability.Overlaps(b.Window(), window) {
			return response.Booking{}, errors.CarUnavailable("car is not available for the selected dates")
		}
	}

	booking, err := u.repo.CreateBooking(ctx, entity.Booking{
		UserID:            userID,
		CarID:             payload.CarID,
		PickupLocationID:  payload.PickupLocationID,
		DropoffLocationID: payload.DropoffLocationID,
		PickupAt:          window.From,
		DropoffAt:         window.To,
		StatusID:          pendingID,
		TotalAmount:       quote.Total,
		BookedAt:          u.now().UTC(),
	}, blocking)
	if err != nil {
		return response.Booking{}, err
	}

	u.notify(ctx, messagestream.Notification{
		Event:     messagestream.EventBookingCreated,
		UserID:    userID,
		BookingID: booking.ID,
		Subject:   fmt.Sprintf("Booking #%d received", booking.ID),
		Body:      fmt.Sprintf("Your booking from %s to %s totals %s.", window.From.Format(time.RFC1123), window.To.Format(time.RFC1123), quote.Total.StringFixed(2)),
	})

	if u.cfg.PendingTTL > 0 {
		if err := u.scheduler.EnqueueExpirePending(ctx, booking.ID, u.now().Add(u.cfg.PendingTTL)); err != nil {
			u.log.Error(ctx, fmt.Sprintf("error schedule expiry for booking %d", booking.ID), err)
		}
	}

	return u.GetByID(ctx, booking.ID)
}

func (u *usecase) CancelBooking(ctx context.Context, userID, bookingID int64) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return errors.ForbiddenError("you can only cancel your own booking")
	}

	if !u.now().Before(booking.PickupAt) {
		return errors.BadRequest("cannot cancel on/after pickup time")
	}

	if err := u.transition(ctx, booking, lookup.BookingCancelled); err != nil {
		return err
	}

	u.notify(ctx, messagestream.Notification{
		Event:     messagestream.EventBookingCancelled,
		UserID:    booking.UserID,
		BookingID: booking.ID,
		Subject:   fmt.Sprintf("Booking #%d cancelled", booking.ID),
		Body:      "Your booking has been cancelled.",
	})
	return nil
}

func (u *usecase) UpdateStatus(ctx context.Context, bookingID int64, payload *request.UpdateStatus) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	targetID, err := u.lookups.BookingStatuses.ID(payload.Status)
	if err != nil {
		return response.Booking{}, errors.BadRequest(fmt.Sprintf("unknown booking status '%s'", payload.Status))
	}
	target := u.lookups.BookingStatuses.Name(targetID)

	if err := u.transition(ctx, booking, target); err != nil {
		return response.Booking{}, err
	}

	if target == lookup.BookingCancelled {
		u.notify(ctx, messagestream.Notification{
			Event:     messagestream.EventBookingCancelled,
			UserID:    booking.UserID,
			BookingID: booking.ID,
			Subject:   fmt.Sprintf("Booking #%d cancelled", booking.ID),
			Body:      "Your booking has been cancelled by our staff.",
		})
	}

	return u.GetByID(ctx, bookingID)
}

// transition moves booking to target if the status graph allows it.
func (u *usecase) transition(ctx context.Context, booking entity.Booking, target string) error {
	current := u.lookups.BookingStatuses.Name(booking.StatusID)

	allowed := false
	for _, next := range transitions[current] {
		if next == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.BadRequest(fmt.Sprintf("cannot change booking status from %s to %s", current, target))
	}

	targetID, err := u.lookups.BookingStatuses.ID(target)
	if err != nil {
		return err
	}

	return u.repo.UpdateBookingStatus(ctx, booking.ID, booking.StatusID, targetID)
}

func (u *usecase) ExpirePending(ctx context.Context, bookingID int64) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if errors.Is(err, http.StatusNotFound) {
		u.log.Info(ctx, fmt.Sprintf("booking %d no longer exists, nothing to expire", bookingID))
		return nil
	}
	if err != nil {
		return err
	}

	if !u.lookups.BookingStatuses.Is(booking.StatusID, lookup.BookingPending) {
		return nil
	}

	paid, err := u.repo.HasSuccessfulPayment(ctx, bookingID)
	if err != nil {
		return err
	}
	if paid {
		return nil
	}

	cancelledID, err := u.lookups.BookingStatuses.ID(lookup.BookingCancelled)
	if err != nil {
		return err
	}

	if err := u.repo.UpdateBookingStatus(ctx, bookingID, booking.StatusID, cancelledID); err != nil {
		if errors.Is(err, http.StatusBadRequest) {
			// moved on while we were looking
			return nil
		}
		return err
	}

	u.log.Info(ctx, fmt.Sprintf("booking %d expired unpaid", bookingID))
	u.notify(ctx, messagestream.Notification{
		Event:     messagestream.EventBookingExpired,
		UserID:    booking.UserID,
		BookingID: booking.ID,
		Subject:   fmt.Sprintf("Booking #%d expired", booking.ID),
		Body:      "Your booking was not paid in time and has been cancelled.",
	})
	return nil
}

func (u *usecase) GetMine(ctx context.Context, userID int64) ([]response.Booking, error) {
	details, err := u.repo.FindBookingDetailsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.toResponses(details), nil
}

func (u *usecase) GetAll(ctx context.Context) ([]response.Booking, error) {
	details, err := u.repo.FindAllBookingDetails(ctx)
	if err != nil {
		return nil, err
	}
	return u.toResponses(details), nil
}

func (u *usecase) GetByID(ctx context.Context, bookingID int64) (response.Booking, error) {
	detail, err := u.repo.FindBookingDetailByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	return u.toResponse(detail), nil
}

func (u *usecase) DeleteBooking(ctx context.Context, bookingID int64) error {
	return u.repo.DeleteBooking(ctx, bookingID)
}

func (u *usecase) notify(ctx context.Context, n messagestream.Notification) {
	if u.publish == nil {
		return
	}
	if err := messagestream.Publish(u.publish, messagestream.TopicNotification, n); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish %s", n.Event), err)
	}
}

func (u *usecase) toResponses(details []entity.BookingDetail) []response.Booking {
	out := make([]response.Booking, 0, len(details))
	for _, d := range details {
		out = append(out, u.toResponse(d))
	}
	return out
}

func (u *usecase) toResponse(d entity.BookingDetail) response.Booking {
	statusName := d.StatusName
	if statusName == "" {
		statusName = u.lookups.BookingStatuses.Name(d.StatusID)
	}
	return response.Booking{
		ID:                  d.ID,
		UserID:              d.UserID,
		CarID:               d.CarID,
		CarName:             d.CarName,
		PickupLocationID:    d.PickupLocationID,
		PickupLocationName:  d.PickupLocationName,
		DropoffLocationID:   d.DropoffLocationID,
		DropoffLocationName: d.DropoffLocationName,
		PickupAt:            d.PickupAt,
		DropoffAt:           d.DropoffAt,
		StatusID:            d.StatusID,
		StatusName:          statusName,
		TotalAmount:         d.TotalAmount,
		BookedAt:            d.BookedAt,
	}
}
