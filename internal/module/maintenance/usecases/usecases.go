package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-service/internal/module/maintenance/models/entity"
	"rental-service/internal/module/maintenance/models/request"
	"rental-service/internal/module/maintenance/models/response"
	"rental-service/internal/module/maintenance/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
)

// Customers may report a car picked up no later than tomorrow and returned within the last 30 days.
const (
	reportLead     = 24 * time.Hour
	reportLookback = 30 * 24 * time.Hour
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
	now  func() time.Time
}

type Usecase interface {
	Create(ctx context.Context, userID int64, role string, payload *request.CreateMaintenanceRequest) (response.MaintenanceRequest, error)
	Resolve(ctx context.Context, requestID int64) error
	GetOpen(ctx context.Context) ([]response.MaintenanceRequest, error)
	GetByCar(ctx context.Context, carID int64) ([]response.MaintenanceRequest, error)
	GetMine(ctx context.Context, userID int64) ([]response.MaintenanceRequest, error)
	GetByID(ctx context.Context, requestID int64) (response.MaintenanceRequest, error)
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

func (u *usecase) Create(ctx context.Context, userID int64, role string, payload *request.CreateMaintenanceRequest) (response.MaintenanceRequest, error) {
	description := strings.TrimSpace(payload.IssueDescription)
	if description == "" {
		return response.MaintenanceRequest{}, errors.BadRequest("Issue description is required.")
	}

	exists, err := u.repo.CarExists(ctx, payload.CarID)
	if err != nil {
		return response.MaintenanceRequest{}, err
	}
	if !exists {
		return response.MaintenanceRequest{}, errors.NotFound(fmt.Sprintf("car %d not found", payload.CarID))
	}

	now := u.now().UTC()
	if !lookup.IsStaff(role) {
		rented, err := u.repo.HasRecentBooking(ctx, userID, payload.CarID, now.Add(-reportLookback), now.Add(reportLead))
		if err != nil {
			return response.MaintenanceRequest{}, err
		}
		if !rented {
			return response.MaintenanceRequest{}, errors.ForbiddenError("You can only report maintenance for cars you rented recently.")
		}
	}

	req, err := u.repo.Insert(ctx, entity.MaintenanceRequest{
		CarID:            payload.CarID,
		ReportedByID:     userID,
		IssueDescription: description,
		ReportedAt:       now,
	})
	if err != nil {
		return response.MaintenanceRequest{}, err
	}

	u.log.Info(ctx, fmt.Sprintf("maintenance request %d opened for car %d", req.ID, req.CarID))
	return toResponse(req), nil
}

func (u *usecase) Resolve(ctx context.Context, requestID int64) error {
	req, err := u.repo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.IsResolved {
		return errors.BadRequest("Request is already resolved.")
	}
	return u.repo.Resolve(ctx, requestID)
}

func (u *usecase) GetOpen(ctx context.Context) ([]response.MaintenanceRequest, error) {
	reqs, err := u.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(reqs), nil
}

func (u *usecase) GetByCar(ctx context.Context, carID int64) ([]response.MaintenanceRequest, error) {
	reqs, err := u.repo.FindByCarID(ctx, carID)
	if err != nil {
		return nil, err
	}
	return toResponses(reqs), nil
}

func (u *usecase) GetMine(ctx context.Context, userID int64) ([]response.MaintenanceRequest, error) {
	reqs, err := u.repo.FindByReporter(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(reqs), nil
}

func (u *usecase) GetByID(ctx context.Context, requestID int64) (response.MaintenanceRequest, error) {
	req, err := u.repo.FindByID(ctx, requestID)
	if err != nil {
		return response.MaintenanceRequest{}, err
	}
	return toResponse(req), nil
}

func toResponses(reqs []entity.MaintenanceRequest) []response.MaintenanceRequest {
	out := make([]response.MaintenanceRequest, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toResponse(r))
	}
	return out
}

func toResponse(r entity.MaintenanceRequest) response.MaintenanceRequest {
	return response.MaintenanceRequest{
		ID:               r.ID,
		CarID:            r.CarID,
		ReportedBy:       r.ReportedByID,
		IssueDescription: r.IssueDescription,
		ReportedAt:       r.ReportedAt,
		IsResolved:       r.IsResolved,
	}
}
