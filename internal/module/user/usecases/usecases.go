package usecases

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rental-service/internal/module/user/models/entity"
	"rental-service/internal/module/user/models/request"
	"rental-service/internal/module/user/models/response"
	"rental-service/internal/module/user/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens; *jwt.Manager satisfies it.
type TokenIssuer interface {
	GenerateToken(userID int64, email, role string) (string, error)
}

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	tokens   TokenIssuer
	lookups  *lookup.Lookups
	hashCost int
	now      func() time.Time
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.User, error)
	RegisterWithRole(ctx context.Context, payload *request.Register) (response.User, error)
	Login(ctx context.Context, payload *request.Login) (response.Token, error)
	Me(ctx context.Context, userID int64) (response.Me, error)
	GetAll(ctx context.Context) ([]response.User, error)
	GetByID(ctx context.Context, userID int64) (response.User, error)
	Update(ctx context.Context, userID int64, payload *request.UpdateUser) (response.User, error)
	Delete(ctx context.Context, userID int64) error
	ChangeRole(ctx context.Context, userID int64, payload *request.ChangeRole) error
	SetActive(ctx context.Context, userID int64, active bool) error
}

type Option func(*usecase)

// WithHashCost overrides bcrypt.DefaultCost.
func WithHashCost(cost int) Option {
	return func(u *usecase) {
		u.hashCost = cost
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *usecase) {
		u.now = now
	}
}

func New(repo repositories.Repositories, log log.Logger, tokens TokenIssuer, lookups *lookup.Lookups, opts ...Option) Usecase {
	u := &usecase{
		repo:     repo,
		log:      log,
		tokens:   tokens,
		lookups:  lookups,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register always creates a customer, whatever role the payload asks for.
func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.User, error) {
	roleID, err := u.lookups.Roles.ID(lookup.RoleCustomer)
	if err != nil {
		return response.User{}, err
	}
	return u.register(ctx, payload, roleID)
}

// RegisterWithRole resolves role_id first, then role_name, and falls back to Customer.
func (u *usecase) RegisterWithRole(ctx context.Context, payload *request.Register) (response.User, error) {
	var roleID int64
	switch {
	case payload.RoleID > 0 || strings.TrimSpace(payload.RoleName) != "":
		id, err := u.resolveRole(payload.RoleID, payload.RoleName)
		if err != nil {
			return response.User{}, err
		}
		roleID = id
	default:
		id, err := u.lookups.Roles.ID(lookup.RoleCustomer)
		if err != nil {
			return response.User{}, err
		}
		roleID = id
	}
	return u.register(ctx, payload, roleID)
}

func (u *usecase) resolveRole(roleID int64, roleName string) (int64, error) {
	if roleID > 0 {
		if !u.lookups.Roles.Has(roleID) {
			return 0, errors.NotFound(fmt.Sprintf("role %d not found", roleID))
		}
		return roleID, nil
	}
	return u.lookups.Roles.ID(roleName)
}

func (u *usecase) register(ctx context.Context, payload *request.Register, roleID int64) (response.User, error) {
	email := normalizeEmail(payload.Email)

	exists, err := u.repo.EmailExists(ctx, email)
	if err != nil {
		return response.User{}, err
	}
	if exists {
		return response.User{}, errors.UserAlreadyExists("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), u.hashCost)
	if err != nil {
		u.log.Error(ctx, "error hash password", err)
		return response.User{}, errors.InternalServerError("error hash password")
	}

	user, err := u.repo.Insert(ctx, entity.User{
		FirstName:    strings.TrimSpace(payload.FirstName),
		LastName:     strings.TrimSpace(payload.LastName),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(payload.PhoneNumber),
		PasswordHash: string(hash),
		RoleID:       roleID,
		IsActive:     true,
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		return response.User{}, err
	}

	u.log.Info(ctx, fmt.Sprintf("user %d registered as %s", user.ID, u.lookups.Roles.Name(roleID)))
	return toResponse(entity.UserDetail{User: user, RoleName: u.lookups.Roles.Name(roleID)}), nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Token, error) {
	user, err := u.repo.FindByEmail(ctx, normalizeEmail(payload.Email))
	if errors.Is(err, http.StatusNotFound) {
		return response.Token{}, errors.UnauthorizedError("invalid email or password")
	}
	if err != nil {
		return response.Token{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return response.Token{}, errors.UnauthorizedError("invalid email or password")
	}

	if !user.IsActive {
		u.log.Warn(ctx, fmt.Sprintf("login attempt on deactivated user %d", user.ID))
		return response.Token{}, errors.UnauthorizedError("account is deactivated")
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.RoleName)
	if err != nil {
		u.log.Error(ctx, "error generate token", err)
		return response.Token{}, errors.InternalServerError("error generate token")
	}

	return response.Token{Token: token}, nil
}

func (u *usecase) Me(ctx context.Context, userID int64) (response.Me, error) {
	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return response.Me{}, err
	}
	return response.Me{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RoleName:  user.RoleName,
	}, nil
}

func (u *usecase) GetAll(ctx context.Context) ([]response.User, error) {
	users, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]response.User, 0, len(users))
	for _, user := range users {
		out = append(out, toResponse(user))
	}
	return out, nil
}

func (u *usecase) GetByID(ctx context.Context, userID int64) (response.User, error) {
	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}
	return toResponse(user), nil
}

func (u *usecase) Update(ctx context.Context, userID int64, payload *request.UpdateUser) (response.User, error) {
	current, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}

	roleID := current.RoleID
	if payload.RoleID != nil {
		if roleID, err = u.resolveRole(*payload.RoleID, ""); err != nil {
			return response.User{}, err
		}
	}

	updated := current.User
	updated.FirstName = strings.TrimSpace(payload.FirstName)
	updated.LastName = strings.TrimSpace(payload.LastName)
	updated.PhoneNumber = strings.TrimSpace(payload.PhoneNumber)
	updated.RoleID = roleID
	updated.IsActive = payload.IsActive

	if err := u.repo.Update(ctx, updated); err != nil {
		return response.User{}, err
	}

	return toResponse(entity.UserDetail{User: updated, RoleName: u.lookups.Roles.Name(roleID)}), nil
}

func (u *usecase) Delete(ctx context.Context, userID int64) error {
	return u.repo.Delete(ctx, userID)
}

func (u *usecase) ChangeRole(ctx context.Context, userID int64, payload *request.ChangeRole) error {
	var roleID int64
	if payload.RoleID != nil {
		roleID = *payload.RoleID
	}
	if roleID == 0 && strings.TrimSpace(payload.RoleName) == "" {
		return errors.BadRequest("Provide role_id or role_name.")
	}

	roleID, err := u.resolveRole(roleID, payload.RoleName)
	if err != nil {
		return err
	}

	if err := u.repo.UpdateRole(ctx, userID, roleID); err != nil {
		return err
	}

	u.log.Info(ctx, fmt.Sprintf("user %d is now %s", userID, u.lookups.Roles.Name(roleID)))
	return nil
}

func (u *usecase) SetActive(ctx context.Context, userID int64, active bool) error {
	return u.repo.SetActive(ctx, userID, active)
}

func toResponse(user entity.UserDetail) response.User {
	return response.User{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		RoleName:    user.RoleName,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
}
