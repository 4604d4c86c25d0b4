package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-service/internal/module/payment/gateway"
	"rental-service/internal/module/payment/models/entity"
	"rental-service/internal/module/payment/models/request"
	"rental-service/internal/module/payment/models/response"
	"rental-service/internal/module/payment/repositories"
	"rental-service/internal/pkg/errors"
	"rental-service/internal/pkg/locker"
	"rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
	"rental-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	locker  locker.Locker
	gateway gateway.Gateway
	lookups *lookup.Lookups
	now     func() time.Time
}

type Usecase interface {
	Pay(ctx context.Context, userID int64, role string, payload *request.Pay) (response.Payment, error)
	GetMine(ctx context.Context, userID int64) ([]response.Payment, error)
	GetAll(ctx context.Context) ([]response.Payment, error)
	GetByID(ctx context.Context, paymentID int64) (response.Payment, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, locker locker.Locker, gw gateway.Gateway, lookups *lookup.Lookups) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		locker:  locker,
		gateway: gw,
		lookups: lookups,
		now:     time.Now,
	}
}

func (u *usecase) Pay(ctx context.Context, userID int64, role string, payload *request.Pay) (response.Payment, error) {
	booking, err := u.repo.FindPayableBooking(ctx, payload.BookingID)
	if err != nil {
		return response.Payment{}, err
	}

	if !lookup.IsStaff(role) && booking.UserID != userID {
		return response.Payment{}, errors.ForbiddenError("You can only pay for your own booking.")
	}

	exists, err := u.repo.MethodExists(ctx, payload.MethodID)
	if err != nil {
		return response.Payment{}, err
	}
	if !exists {
		return response.Payment{}, errors.NotFound(fmt.Sprintf("payment method %d not found", payload.MethodID))
	}

	statuses := u.lookups.BookingStatuses
	if statuses.Is(booking.StatusID, lookup.BookingCancelled) || statuses.Is(booking.StatusID, lookup.BookingCompleted) {
		return response.Payment{}, errors.BadRequest(fmt.Sprintf("Cannot pay for a %s booking.", strings.ToLower(statuses.Name(booking.StatusID))))
	}

	if !booking.TotalAmount.IsPositive() {
		return response.Payment{}, errors.BadRequest("Amount must be greater than 0.")
	}

	unlock, err := u.locker.Lock(ctx, locker.BookingPaymentKey(booking.ID))
	if err != nil {
		return response.Payment{}, err
	}
	defer unlock()

	paid, err := u.repo.HasSuccessfulPayment(ctx, booking.ID)
	if err != nil {
		return response.Payment{}, err
	}
	if paid {
		return response.Payment{}, errors.BadRequest("This booking already has a successful payment.")
	}

	result, err := u.gateway.Charge(ctx, gateway.Charge{
		BookingID: booking.ID,
		MethodID:  payload.MethodID,
		Amount:    booking.TotalAmount,
	})
	if err != nil {
		return response.Payment{}, err
	}

	status := lookup.PaymentSuccess
	if !result.Approved {
		status = lookup.PaymentFailed
		u.log.Warn(ctx, fmt.Sprintf("payment for booking %d declined: %s", booking.ID, result.Reason))
	}

	payment, err := u.repo.CreatePayment(ctx, entity.Payment{
		BookingID:     booking.ID,
		MethodID:      payload.MethodID,
		Amount:        booking.TotalAmount,
		Status:        status,
		TransactionID: result.TransactionID,
		PaidAt:        u.now().UTC(),
	})
	if err != nil {
		return response.Payment{}, err
	}

	if status == lookup.PaymentSuccess {
		u.notify(ctx, messagestream.Notification{
			Event:     messagestream.EventPaymentSucceeded,
			UserID:    booking.UserID,
			BookingID: booking.ID,
			Subject:   fmt.Sprintf("Payment received for booking #%d", booking.ID),
			Body:      fmt.Sprintf("We received %s. Transaction %s.", payment.Amount.StringFixed(2), payment.TransactionID),
		})
	}

	return toResponse(entity.PaymentDetail{Payment: payment, UserID: booking.UserID}), nil
}

func (u *usecase) GetMine(ctx context.Context, userID int64) ([]response.Payment, error) {
	payments, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(payments), nil
}

func (u *usecase) GetAll(ctx context.Context) ([]response.Payment, error) {
	payments, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(payments), nil
}

func (u *usecase) GetByID(ctx context.Context, paymentID int64) (response.Payment, error) {
	payment, err := u.repo.FindByID(ctx, paymentID)
	if err != nil {
		return response.Payment{}, err
	}
	return toResponse(payment), nil
}

func (u *usecase) notify(ctx context.Context, n messagestream.Notification) {
	if u.publish == nil {
		return
	}
	if err := messagestream.Publish(u.publish, messagestream.TopicNotification, n); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish %s", n.Event), err)
	}
}

func toResponses(payments []entity.PaymentDetail) []response.Payment {
	out := make([]response.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, toResponse(p))
	}
	return out
}

func toResponse(p entity.PaymentDetail) response.Payment {
	return response.Payment{
		ID:            p.ID,
		BookingID:     p.BookingID,
		MethodID:      p.MethodID,
		MethodName:    p.MethodName,
		Amount:        p.Amount,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}
