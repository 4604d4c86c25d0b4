package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-service/internal/module/refund/models/entity"
	"rental-service/internal/module/refund/models/request"
	"rental-service/internal/module/refund/models/response"
	"rental-service/internal/module/refund/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
	"rental-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	now     func() time.Time
}

type Usecase interface {
	Request(ctx context.Context, userID int64, payload *request.RequestRefund) (response.Refund, error)
	Approve(ctx context.Context, refundID int64) error
	Reject(ctx context.Context, refundID int64) error
	GetMine(ctx context.Context, userID int64) ([]response.Refund, error)
	GetAll(ctx context.Context) ([]response.Refund, error)
	GetByID(ctx context.Context, refundID int64) (response.Refund, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		now:     time.Now,
	}
}

func (u *usecase) Request(ctx context.Context, userID int64, payload *request.RequestRefund) (response.Refund, error) {
	if !payload.Amount.IsPositive() {
		return response.Refund{}, errors.BadRequest("Amount must be greater than 0.")
	}

	ownerID, err := u.repo.FindBookingOwner(ctx, payload.BookingID)
	if err != nil {
		return response.Refund{}, err
	}
	if ownerID != userID {
		return response.Refund{}, errors.ForbiddenError("You can only request a refund for your own booking.")
	}

	payment, err := u.repo.FindPayment(ctx, payload.PaymentID)
	if err != nil {
		return response.Refund{}, err
	}
	if payment.BookingID != payload.BookingID {
		return response.Refund{}, errors.BadRequest("Payment does not belong to the given booking.")
	}
	if !strings.EqualFold(payment.Status, lookup.PaymentSuccess) {
		return response.Refund{}, errors.BadRequest("Only successful payments can be refunded.")
	}

	open, err := u.repo.HasOpenRefund(ctx, payment.ID)
	if err != nil {
		return response.Refund{}, err
	}
	if open {
		return response.Refund{}, errors.BadRequest("There is already a pending or completed refund for this payment.")
	}

	if payload.Amount.GreaterThan(payment.Amount) {
		return response.Refund{}, errors.BadRequest("Refund amount cannot exceed the payment amount.")
	}

	refund, err := u.repo.Insert(ctx, entity.Refund{
		BookingID:   payload.BookingID,
		PaymentID:   payment.ID,
		UserID:      userID,
		Amount:      payload.Amount.Round(2),
		Reason:      strings.TrimSpace(payload.Reason),
		Status:      lookup.RefundPending,
		RequestedAt: u.now().UTC(),
	})
	if err != nil {
		return response.Refund{}, err
	}

	u.notify(ctx, messagestream.Notification{
		Event:     messagestream.EventRefundRequested,
		UserID:    userID,
		BookingID: refund.BookingID,
		Subject:   fmt.Sprintf("Refund request #%d received", refund.ID),
		Body:      fmt.Sprintf("We received your refund request for %s.", refund.Amount.StringFixed(2)),
	})

	return toResponse(refund), nil
}

func (u *usecase) Approve(ctx context.Context, refundID int64) error {
	refund, err := u.repo.FindByID(ctx, refundID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(refund.Status, lookup.RefundPending) {
		return errors.BadRequest("Only pending refunds can be approved.")
	}

	if err := u.repo.Approve(ctx, refundID, u.now().UTC()); err != nil {
		return err
	}

	u.notify(ctx, messagestream.Notification{
		Event:     messagestream.EventRefundApproved,
		UserID:    refund.UserID,
		BookingID: refund.BookingID,
		Subject:   fmt.Sprintf("Refund #%d approved", refund.ID),
		Body:      fmt.Sprintf("%s will be returned to your original payment method.", refund.Amount.StringFixed(2)),
	})
	return nil
}

func (u *usecase) Reject(ctx context.Context, refundID int64) error {
	refund, err := u.repo.FindByID(ctx, refundID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(refund.Status, lookup.RefundPending) {
		return errors.BadRequest("Only pending refunds can be rejected.")
	}

	if err := u.repo.Reject(ctx, refundID, u.now().UTC()); err != nil {
		return err
	}

	u.notify(ctx, messagestream.Notification{
		Event:     messagestream.EventRefundRejected,
		UserID:    refund.UserID,
		BookingID: refund.BookingID,
		Subject:   fmt.Sprintf("Refund #%d rejected", refund.ID),
		Body:      "Your refund request was reviewed and rejected.",
	})
	return nil
}

func (u *usecase) GetMine(ctx context.Context, userID int64) ([]response.Refund, error) {
	refunds, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(refunds), nil
}

func (u *usecase) GetAll(ctx context.Context) ([]response.Refund, error) {
	refunds, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(refunds), nil
}

func (u *usecase) GetByID(ctx context.Context, refundID int64) (response.Refund, error) {
	refund, err := u.repo.FindByID(ctx, refundID)
	if err != nil {
		return response.Refund{}, err
	}
	return toResponse(refund), nil
}

func (u *usecase) notify(ctx context.Context, n messagestream.Notification) {
	if u.publish == nil {
		return
	}
	if err := messagestream.Publish(u.publish, messagestream.TopicNotification, n); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish %s", n.Event), err)
	}
}

func toResponses(refunds []entity.Refund) []response.Refund {
	out := make([]response.Refund, 0, len(refunds))
	for _, r := range refunds {
		out = append(out, toResponse(r))
	}
	return out
}

func toResponse(r entity.Refund) response.Refund {
	return response.Refund{
		ID:          r.ID,
		BookingID:   r.BookingID,
		PaymentID:   r.PaymentID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		Reason:      r.Reason,
		Status:      r.Status,
		RequestedAt: r.RequestedAt,
		ProcessedAt: r.ProcessedAt,
	}
}
