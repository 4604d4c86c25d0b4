package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/user/models/entity"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const detailSelect = `
	SELECT u.id, u.first_name, u.last_name, u.email, u.phone_number, u.password_hash,
		u.role_id, u.is_active, u.created_at,
		r.name AS role_name
	FROM users u
	JOIN roles r ON r.id = u.role_id`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindByEmail(ctx context.Context, email string) (entity.UserDetail, error)
	FindByID(ctx context.Context, userID int64) (entity.UserDetail, error)
	FindAll(ctx context.Context) ([]entity.UserDetail, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user entity.User) (entity.User, error)
	Update(ctx context.Context, user entity.User) error
	UpdateRole(ctx context.Context, userID, roleID int64) error
	SetActive(ctx context.Context, userID int64, active bool) error
	Delete(ctx context.Context, userID int64) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindByEmail implements Repositories.
func (r *repositories) FindByEmail(ctx context.Context, email string) (entity.UserDetail, error) {
	var user entity.UserDetail
	err := r.db.GetContext(ctx, &user, detailSelect+` WHERE u.email = $1`, email)
	if err == sql.ErrNoRows {
		return entity.UserDetail{}, errors.NotFound(fmt.Sprintf("user %s not found", email))
	}
	if err != nil {
		r.log.Error(ctx, "error find user by email", err)
		return entity.UserDetail{}, errors.InternalServerError("error find user by email")
	}
	return user, nil
}

// FindByID implements Repositories.
func (r *repositories) FindByID(ctx context.Context, userID int64) (entity.UserDetail, error) {
	var user entity.UserDetail
	err := r.db.GetContext(ctx, &user, detailSelect+` WHERE u.id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.UserDetail{}, errors.NotFound(fmt.Sprintf("user %d not found", userID))
	}
	if err != nil {
		r.log.Error(ctx, "error find user by id", err)
		return entity.UserDetail{}, errors.InternalServerError("error find user by id")
	}
	return user, nil
}

// FindAll implements Repositories.
func (r *repositories) FindAll(ctx context.Context) ([]entity.UserDetail, error) {
	users := []entity.UserDetail{}
	if err := r.db.SelectContext(ctx, &users, detailSelect+` ORDER BY u.id`); err != nil {
		r.log.Error(ctx, "error find users", err)
		return nil, errors.InternalServerError("error find users")
	}
	return users, nil
}

// EmailExists implements Repositories.
func (r *repositories) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email); err != nil {
		r.log.Error(ctx, "error check email", err)
		return false, errors.InternalServerError("error check email")
	}
	return exists, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, user entity.User) (entity.User, error) {
	query := `INSERT INTO users (first_name, last_name, email, phone_number, password_hash, role_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.GetContext(ctx, &user.ID, query,
		user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.PasswordHash, user.RoleID, user.IsActive, user.CreatedAt)
	if database.IsPgError(err, database.UniqueViolation) {
		return entity.User{}, errors.UserAlreadyExists("user already exists")
	}
	if err != nil {
		r.log.Error(ctx, "error insert user", err)
		return entity.User{}, errors.InternalServerError("error insert user")
	}
	return user, nil
}

// Update implements Repositories.
func (r *repositories) Update(ctx context.Context, user entity.User) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, phone_number = $3, role_id = $4, is_active = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.PhoneNumber, user.RoleID, user.IsActive, user.ID)
	if err != nil {
		r.log.Error(ctx, "error update user", err)
		return errors.InternalServerError("error update user")
	}
	return expectOne(res, user.ID)
}

// UpdateRole implements Repositories.
func (r *repositories) UpdateRole(ctx context.Context, userID, roleID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET role_id = $1 WHERE id = $2`, roleID, userID)
	if err != nil {
		r.log.Error(ctx, "error update user role", err)
		return errors.InternalServerError("error update user role")
	}
	return expectOne(res, userID)
}

// SetActive implements Repositories.
func (r *repositories) SetActive(ctx context.Context, userID int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, active, userID)
	if err != nil {
		r.log.Error(ctx, "error update user status", err)
		return errors.InternalServerError("error update user status")
	}
	return expectOne(res, userID)
}

// Delete implements Repositories.
func (r *repositories) Delete(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if database.IsPgError(err, database.ForeignKeyViolation) {
		return errors.Conflict(fmt.Sprintf("user %d still has bookings, deactivate the account instead", userID))
	}
	if err != nil {
		r.log.Error(ctx, "error delete user", err)
		return errors.InternalServerError("error delete user")
	}
	return expectOne(res, userID)
}

func expectOne(res sql.Result, userID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("user %d not found", userID))
	}
	return nil
}
