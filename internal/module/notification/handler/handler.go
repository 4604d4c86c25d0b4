package handler

import (
	"fmt"

	"rental-service/internal/module/notification/models/request"
	"rental-service/internal/module/notification/usecases"
	"rental-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// ConsumeNotification parks malformed messages on the poisoned queue and acks them.
// Delivery errors are returned so the router retries before poisoning.
func (h *NotificationHandler) ConsumeNotification(msg *message.Message) error {
	var req messagestream.Notification
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.poison(msg, err)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return h.poison(msg, err)
	}

	if err := h.Usecase.Deliver(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error deliver notification: %v", err))
		return err
	}

	return nil
}

func (h *NotificationHandler) poison(msg *message.Message, cause error) error {
	err := messagestream.Publish(h.Publish, messagestream.TopicPoisoned, request.PoisonedQueue{
		TopicTarget: messagestream.TopicNotification,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	})
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		return err
	}
	return nil
}
