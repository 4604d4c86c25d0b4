package usecases

import (
	"context"
	"strings"
	"time"

	"rental-service/internal/module/bookingissue/models/entity"
	"rental-service/internal/module/bookingissue/models/request"
	"rental-service/internal/module/bookingissue/models/response"
	"rental-service/internal/module/bookingissue/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
	now  func() time.Time
}

type Usecase interface {
	Create(ctx context.Context, userID int64, payload *request.CreateIssue) (response.BookingIssue, error)
	UpdateStatus(ctx context.Context, issueID int64, payload *request.UpdateStatus) error
	GetMine(ctx context.Context, userID int64) ([]response.BookingIssue, error)
	GetAll(ctx context.Context) ([]response.BookingIssue, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]response.BookingIssue, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (u *usecase) Create(ctx context.Context, userID int64, payload *request.CreateIssue) (response.BookingIssue, error) {
	if strings.TrimSpace(payload.Description) == "" {
		return response.BookingIssue{}, errors.BadRequest("Issue description is required.")
	}

	ownerID, err := u.repo.FindBookingOwner(ctx, payload.BookingID)
	if err != nil {
		return response.BookingIssue{}, err
	}
	if ownerID != userID {
		return response.BookingIssue{}, errors.ForbiddenError("You can only report issues for your own bookings.")
	}

	issue, err := u.repo.Insert(ctx, entity.BookingIssue{
		BookingID:   payload.BookingID,
		UserID:      userID,
		IssueType:   strings.TrimSpace(payload.IssueType),
		Description: strings.TrimSpace(payload.Description),
		Status:      entity.StatusOpen,
		CreatedAt:   u.now().UTC(),
	})
	if err != nil {
		return response.BookingIssue{}, err
	}
	return toResponse(issue), nil
}

func (u *usecase) UpdateStatus(ctx context.Context, issueID int64, payload *request.UpdateStatus) error {
	status, ok := entity.CanonicalStatus(payload.Status)
	if !ok {
		return errors.BadRequest("Invalid status. Allowed: Open, In Progress, Resolved, Closed.")
	}
	return u.repo.UpdateStatus(ctx, issueID, status)
}

func (u *usecase) GetMine(ctx context.Context, userID int64) ([]response.BookingIssue, error) {
	issues, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(issues), nil
}

func (u *usecase) GetAll(ctx context.Context) ([]response.BookingIssue, error) {
	issues, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(issues), nil
}

func (u *usecase) GetByBooking(ctx context.Context, bookingID int64) ([]response.BookingIssue, error) {
	issues, err := u.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toResponses(issues), nil
}

func toResponses(issues []entity.BookingIssue) []response.BookingIssue {
	out := make([]response.BookingIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, toResponse(i))
	}
	return out
}

func toResponse(i entity.BookingIssue) response.BookingIssue {
	return response.BookingIssue{
		ID:          i.ID,
		BookingID:   i.BookingID,
		UserID:      i.UserID,
		IssueType:   i.IssueType,
		Description: i.Description,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
	}
}
