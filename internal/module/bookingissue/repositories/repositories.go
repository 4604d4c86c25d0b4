package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/bookingissue/models/entity"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const issueSelect = `SELECT id, booking_id, user_id, issue_type, description, status, created_at FROM booking_issues`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindBookingOwner(ctx context.Context, bookingID int64) (int64, error)
	Insert(ctx context.Context, issue entity.BookingIssue) (entity.BookingIssue, error)
	UpdateStatus(ctx context.Context, issueID int64, status string) error
	FindByUserID(ctx context.Context, userID int64) ([]entity.BookingIssue, error)
	FindByBookingID(ctx context.Context, bookingID int64) ([]entity.BookingIssue, error)
	FindAll(ctx context.Context) ([]entity.BookingIssue, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindBookingOwner implements Repositories.
func (r *repositories) FindBookingOwner(ctx context.Context, bookingID int64) (int64, error) {
	var userID int64
	err := r.db.GetContext(ctx, &userID, `SELECT user_id FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return 0, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking owner", err)
		return 0, errors.InternalServerError("error find booking")
	}
	return userID, nil
}

// Insert implements Repositories.
func (r *repositories) Insert(ctx context.Context, issue entity.BookingIssue) (entity.BookingIssue, error) {
	query := `INSERT INTO booking_issues (booking_id, user_id, issue_type, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.GetContext(ctx, &issue.ID, query,
		issue.BookingID, issue.UserID, issue.IssueType, issue.Description, issue.Status, issue.CreatedAt)
	if err != nil {
		r.log.Error(ctx, "error insert booking issue", err)
		return entity.BookingIssue{}, errors.InternalServerError("error insert booking issue")
	}
	return issue, nil
}

// UpdateStatus implements Repositories.
func (r *repositories) UpdateStatus(ctx context.Context, issueID int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE booking_issues SET status = $1 WHERE id = $2`, status, issueID)
	if err != nil {
		r.log.Error(ctx, "error update booking issue status", err)
		return errors.InternalServerError("error update booking issue status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("issue %d not found", issueID))
	}
	return nil
}

// FindByUserID implements Repositories.
func (r *repositories) FindByUserID(ctx context.Context, userID int64) ([]entity.BookingIssue, error) {
	return r.list(ctx, issueSelect+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// FindByBookingID implements Repositories.
func (r *repositories) FindByBookingID(ctx context.Context, bookingID int64) ([]entity.BookingIssue, error) {
	return r.list(ctx, issueSelect+` WHERE booking_id = $1 ORDER BY created_at DESC`, bookingID)
}

// FindAll implements Repositories.
func (r *repositories) FindAll(ctx context.Context) ([]entity.BookingIssue, error) {
	return r.list(ctx, issueSelect+` ORDER BY created_at DESC`)
}

func (r *repositories) list(ctx context.Context, query string, args ...interface{}) ([]entity.BookingIssue, error) {
	issues := []entity.BookingIssue{}
	if err := r.db.SelectContext(ctx, &issues, query, args...); err != nil {
		r.log.Error(ctx, "error find booking issues", err)
		return nil, errors.InternalServerError("error find booking issues")
	}
	return issues, nil
}
