package usecases

import (
	"context"
	"strings"

	"rental-service/internal/module/location/models/entity"
	"rental-service/internal/module/location/models/request"
	"rental-service/internal/module/location/models/response"
	"rental-service/internal/module/location/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	GetAll(ctx context.Context) ([]response.Location, error)
	GetByID(ctx context.Context, locationID int64) (response.Location, error)
	Create(ctx context.Context, payload *request.UpsertLocation) (response.Location, error)
	Update(ctx context.Context, locationID int64, payload *request.UpsertLocation) (response.Location, error)
	Delete(ctx context.Context, locationID int64) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) GetAll(ctx context.Context) ([]response.Location, error) {
	locations, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]response.Location, 0, len(locations))
	for _, l := range locations {
		out = append(out, toResponse(l))
	}
	return out, nil
}

func (u *usecase) GetByID(ctx context.Context, locationID int64) (response.Location, error) {
	location, err := u.repo.FindByID(ctx, locationID)
	if err != nil {
		return response.Location{}, err
	}
	return toResponse(location), nil
}

func toEntity(locationID int64, payload *request.UpsertLocation) (entity.Location, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return entity.Location{}, errors.BadRequest("Location name is required.")
	}
	return entity.Location{ID: locationID, Name: name, Address: strings.TrimSpace(payload.Address)}, nil
}

func (u *usecase) Create(ctx context.Context, payload *request.UpsertLocation) (response.Location, error) {
	location, err := toEntity(0, payload)
	if err != nil {
		return response.Location{}, err
	}

	location, err = u.repo.Insert(ctx, location)
	if err != nil {
		return response.Location{}, err
	}
	return toResponse(location), nil
}

func (u *usecase) Update(ctx context.Context, locationID int64, payload *request.UpsertLocation) (response.Location, error) {
	location, err := toEntity(locationID, payload)
	if err != nil {
		return response.Location{}, err
	}

	if err := u.repo.Update(ctx, location); err != nil {
		return response.Location{}, err
	}
	return toResponse(location), nil
}

func (u *usecase) Delete(ctx context.Context, locationID int64) error {
	return u.repo.Delete(ctx, locationID)
}

func toResponse(l entity.Location) response.Location {
	return response.Location{ID: l.ID, Name: l.Name, Address: l.Address}
}
