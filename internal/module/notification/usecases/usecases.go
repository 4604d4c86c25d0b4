package usecases

import (
	"context"
	"fmt"
	"net/http"

	"rental-service/internal/module/notification/mailer"
	"rental-service/internal/module/notification/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/messagestream"
)

type usecase struct {
	repo   repositories.Repositories
	log    log.Logger
	mailer mailer.Mailer
}

type Usecase interface {
	Deliver(ctx context.Context, n *messagestream.Notification) error
}

func New(repo repositories.Repositories, log log.Logger, m mailer.Mailer) Usecase {
	return &usecase{
		repo:   repo,
		log:    log,
		mailer: m,
	}
}

// Deliver emails the user behind n. A deleted user is skipped rather than retried.
func (u *usecase) Deliver(ctx context.Context, n *messagestream.Notification) error {
	recipient, err := u.repo.FindRecipient(ctx, n.UserID)
	if errors.Is(err, http.StatusNotFound) {
		u.log.Warn(ctx, fmt.Sprintf("drop %s notification: user %d is gone", n.Event, n.UserID))
		return nil
	}
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Hi %s,\n\n%s", recipient.FirstName, n.Body)
	if err := u.mailer.Send(ctx, mailer.Email{To: recipient.Email, Subject: n.Subject, Body: body}); err != nil {
		u.log.Error(ctx, "error send email", err)
		return err
	}

	u.log.Info(ctx, fmt.Sprintf("%s notification sent to user %d", n.Event, n.UserID))
	return nil
}
