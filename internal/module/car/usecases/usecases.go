package usecases

import (
	"context"
	"fmt"

	"rental-service/internal/module/car/models/entity"
	"rental-service/internal/module/car/models/request"
	"rental-service/internal/module/car/models/response"
	"rental-service/internal/module/car/repositories"
	"rental-service/internal/pkg/availability"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	lookups *lookup.Lookups
}

type Usecase interface {
	GetAll(ctx context.Context, brandName string) ([]response.Car, error)
	GetByID(ctx context.Context, carID int64) (response.Car, error)
	Create(ctx context.Context, payload *request.UpsertCar) (response.Car, error)
	Update(ctx context.Context, carID int64, payload *request.UpsertCar) (response.Car, error)
	SetStatus(ctx context.Context, carID int64, payload *request.SetStatus) error
	Delete(ctx context.Context, carID int64) error
	Search(ctx context.Context, payload *request.Search) ([]response.Car, error)
	IsAvailable(ctx context.Context, carID int64, window availability.Window) (bool, error)
}

func New(repo repositories.Repositories, log log.Logger, lookups *lookup.Lookups) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		lookups: lookups,
	}
}

func (u *usecase) GetAll(ctx context.Context, brandName string) ([]response.Car, error) {
	cars, err := u.repo.FindAll(ctx, brandName)
	if err != nil {
		return nil, err
	}
	return toResponses(cars), nil
}

func (u *usecase) GetByID(ctx context.Context, carID int64) (response.Car, error) {
	car, err := u.repo.FindByID(ctx, carID)
	if err != nil {
		return response.Car{}, err
	}
	return toResponse(car), nil
}

// validate checks brand and status references before any write.
func (u *usecase) validate(ctx context.Context, payload *request.UpsertCar) error {
	if payload.DailyRate.IsNegative() {
		return errors.BadRequest("daily rate cannot be negative")
	}

	exists, err := u.repo.BrandExists(ctx, payload.BrandID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound(fmt.Sprintf("brand %d not found", payload.BrandID))
	}

	if !u.lookups.CarStatuses.Has(payload.StatusID) {
		return errors.NotFound(fmt.Sprintf("car status %d not found", payload.StatusID))
	}
	return nil
}

func (u *usecase) Create(ctx context.Context, payload *request.UpsertCar) (response.Car, error) {
	if err := u.validate(ctx, payload); err != nil {
		return response.Car{}, err
	}

	dup, err := u.repo.DuplicateExists(ctx, payload.BrandID, payload.ModelName, payload.Year, 0)
	if err != nil {
		return response.Car{}, err
	}
	if dup {
		return response.Car{}, errors.BadRequest("a car with the same brand/model/year already exists")
	}

	id, err := u.repo.Insert(ctx, toEntity(0, payload))
	if err != nil {
		return response.Car{}, err
	}

	u.log.Info(ctx, fmt.Sprintf("car %d created", id))
	return u.GetByID(ctx, id)
}

func (u *usecase) Update(ctx context.Context, carID int64, payload *request.UpsertCar) (response.Car, error) {
	if _, err := u.repo.FindByID(ctx, carID); err != nil {
		return response.Car{}, err
	}

	if err := u.validate(ctx, payload); err != nil {
		return response.Car{}, err
	}

	dup, err := u.repo.DuplicateExists(ctx, payload.BrandID, payload.ModelName, payload.Year, carID)
	if err != nil {
		return response.Car{}, err
	}
	if dup {
		return response.Car{}, errors.BadRequest("a car with the same brand/model/year already exists")
	}

	if err := u.repo.Update(ctx, toEntity(carID, payload)); err != nil {
		return response.Car{}, err
	}

	return u.GetByID(ctx, carID)
}

func (u *usecase) SetStatus(ctx context.Context, carID int64, payload *request.SetStatus) error {
	if !u.lookups.CarStatuses.Has(payload.StatusID) {
		return errors.NotFound(fmt.Sprintf("car status %d not found", payload.StatusID))
	}
	return u.repo.UpdateStatus(ctx, carID, payload.StatusID)
}

func (u *usecase) Delete(ctx context.Context, carID int64) error {
	return u.repo.Delete(ctx, carID)
}

func (u *usecase) Search(ctx context.Context, payload *request.Search) ([]response.Car, error) {
	window := availability.Window{From: payload.From.UTC(), To: payload.To.UTC()}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	filter := entity.SearchFilter{
		BrandID:      payload.BrandID,
		FuelType:     payload.FuelType,
		Transmission: payload.Transmission,
		MinSeats:     payload.MinSeats,
		MaxDailyRate: payload.MaxDailyRate,
	}

	cars, err := u.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return []response.Car{}, nil
	}

	blocking, err := availability.BlockingIDs(u.lookups)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(cars))
	for _, c := range cars {
		ids = append(ids, c.ID)
	}

	booked, err := u.repo.FindBlockingWindows(ctx, ids, blocking)
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]bool)
	for _, b := range booked {
		if availability.Overlaps(availability.Window{From: b.PickupAt, To: b.DropoffAt}, window) {
			taken[b.CarID] = true
		}
	}

	out := make([]response.Car, 0, len(cars))
	for _, c := range cars {
		if !taken[c.ID] {
			out = append(out, toResponse(c))
		}
	}
	return out, nil
}

func (u *usecase) IsAvailable(ctx context.Context, carID int64, window availability.Window) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, err
	}

	if _, err := u.repo.FindByID(ctx, carID); err != nil {
		return false, err
	}

	blocking, err := availability.BlockingIDs(u.lookups)
	if err != nil {
		return false, err
	}

	booked, err := u.repo.FindBlockingWindows(ctx, []int64{carID}, blocking)
	if err != nil {
		return false, err
	}

	for _, b := range booked {
		if availability.Overlaps(availability.Window{From: b.PickupAt, To: b.DropoffAt}, window) {
			return false, nil
		}
	}
	return true, nil
}

func toEntity(carID int64, p *request.UpsertCar) entity.Car {
	return entity.Car{
		ID:           carID,
		BrandID:      p.BrandID,
		ModelName:    p.ModelName,
		Year:         p.Year,
		FuelType:     p.FuelType,
		Transmission: p.Transmission,
		Seats:        p.Seats,
		DailyRate:    p.DailyRate.Round(2),
		StatusID:     p.StatusID,
		ImageURL:     p.ImageURL,
		Description:  p.Description,
	}
}

func toResponses(cars []entity.CarDetail) []response.Car {
	out := make([]response.Car, 0, len(cars))
	for _, c := range cars {
		out = append(out, toResponse(c))
	}
	return out
}

func toResponse(c entity.CarDetail) response.Car {
	return response.Car{
		ID:           c.ID,
		BrandID:      c.BrandID,
		BrandName:    c.BrandName,
		ModelName:    c.ModelName,
		Year:         c.Year,
		FuelType:     c.FuelType,
		Transmission: c.Transmission,
		Seats:        c.Seats,
		DailyRate:    c.DailyRate,
		StatusID:     c.StatusID,
		StatusName:   c.StatusName,
		ImageURL:     c.ImageURL,
		Description:  c.Description,
	}
}
