package mailer

import (
	"context"
	"fmt"

	"rental-service/internal/pkg/log"

	"go.uber.org/zap"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type console struct {
	log log.Logger
}

// NewConsole returns a Mailer that writes every email to the log instead of an SMTP server.
func NewConsole(log log.Logger) Mailer {
	return &console{log: log}
}

func (c *console) Send(ctx context.Context, email Email) error {
	if email.To == "" {
		return fmt.Errorf("email has no recipient")
	}
	c.log.Info(ctx, fmt.Sprintf("email to %s: %s", email.To, email.Subject), zap.String("body", email.Body))
	return nil
}
