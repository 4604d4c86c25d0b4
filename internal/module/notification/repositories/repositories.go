package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"rental-service/internal/module/notification/models/entity"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindRecipient(ctx context.Context, userID int64) (entity.Recipient, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindRecipient implements Repositories.
func (r *repositories) FindRecipient(ctx context.Context, userID int64) (entity.Recipient, error) {
	var recipient entity.Recipient
	err := r.db.GetContext(ctx, &recipient, `SELECT id, first_name, email FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.Recipient{}, errors.NotFound(fmt.Sprintf("user %d not found", userID))
	}
	if err != nil {
		r.log.Error(ctx, "error find recipient", err)
		return entity.Recipient{}, errors.InternalServerError("error find recipient")
	}
	return recipient, nil
}
