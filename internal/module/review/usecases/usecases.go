package usecases

import (
	"context"
	"strings"
	"time"

	"rental-service/internal/module/review/models/entity"
	"rental-service/internal/module/review/models/request"
	"rental-service/internal/module/review/models/response"
	"rental-service/internal/module/review/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
	now  func() time.Time
}

type Usecase interface {
	Create(ctx context.Context, userID int64, payload *request.CreateReview) (response.Review, error)
	Update(ctx context.Context, userID, reviewID int64, payload *request.UpdateReview) (response.Review, error)
	Delete(ctx context.Context, userID int64, role string, reviewID int64) error
	GetByCar(ctx context.Context, carID int64) ([]response.Review, error)
	GetMine(ctx context.Context, userID int64) ([]response.Review, error)
	GetByID(ctx context.Context, reviewID int64) (response.Review, error)
}

type Option func(*usecase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *usecase) {
		u.now = now
	}
}

func New(repo repositories.Repositories, log log.Logger, opts ...Option) Usecase {
	u := &usecase{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.BadRequest("Rating must be between 1 and 5.")
	}
	return nil
}

func (u *usecase) Create(ctx context.Context, userID int64, payload *request.CreateReview) (response.Review, error) {
	if err := validateRating(payload.Rating); err != nil {
		return response.Review{}, err
	}

	booking, err := u.repo.FindBooking(ctx, payload.BookingID)
	if err != nil {
		return response.Review{}, err
	}
	if booking.UserID != userID {
		return response.Review{}, errors.ForbiddenError("You can only review your own bookings.")
	}
	if booking.DropoffAt.After(u.now()) {
		return response.Review{}, errors.BadRequest("You can review only after the dropoff time.")
	}

	exists, err := u.repo.Exists(ctx, booking.ID, userID)
	if err != nil {
		return response.Review{}, err
	}
	if exists {
		return response.Review{}, errors.BadRequest("You have already reviewed this booking.")
	}

	review, err := u.repo.Insert(ctx, entity.Review{
		BookingID: booking.ID,
		UserID:    userID,
		CarID:     booking.CarID,
		Rating:    payload.Rating,
		Comment:   strings.TrimSpace(payload.Comment),
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		return response.Review{}, err
	}
	return toResponse(review), nil
}

func (u *usecase) Update(ctx context.Context, userID, reviewID int64, payload *request.UpdateReview) (response.Review, error) {
	if err := validateRating(payload.Rating); err != nil {
		return response.Review{}, err
	}

	review, err := u.repo.FindByID(ctx, reviewID)
	if err != nil {
		return response.Review{}, err
	}
	if review.UserID != userID {
		return response.Review{}, errors.ForbiddenError("You can only update your own review.")
	}

	review.Rating = payload.Rating
	review.Comment = strings.TrimSpace(payload.Comment)
	if err := u.repo.Update(ctx, review); err != nil {
		return response.Review{}, err
	}
	return toResponse(review), nil
}

func (u *usecase) Delete(ctx context.Context, userID int64, role string, reviewID int64) error {
	review, err := u.repo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID && !lookup.IsStaff(role) {
		return errors.ForbiddenError("You can only delete your own review.")
	}
	return u.repo.Delete(ctx, reviewID)
}

func (u *usecase) GetByCar(ctx context.Context, carID int64) ([]response.Review, error) {
	reviews, err := u.repo.FindByCarID(ctx, carID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

func (u *usecase) GetMine(ctx context.Context, userID int64) ([]response.Review, error) {
	reviews, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

func (u *usecase) GetByID(ctx context.Context, reviewID int64) (response.Review, error) {
	review, err := u.repo.FindByID(ctx, reviewID)
	if err != nil {
		return response.Review{}, err
	}
	return toResponse(review), nil
}

func toResponses(reviews []entity.Review) []response.Review {
	out := make([]response.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toResponse(r))
	}
	return out
}

func toResponse(r entity.Review) response.Review {
	return response.Review{
		ID:        r.ID,
		BookingID: r.BookingID,
		UserID:    r.UserID,
		CarID:     r.CarID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
