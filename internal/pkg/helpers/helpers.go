package helpers

import (
	"fmt"
	"strconv"

	"rental-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{Message: message, Data: data})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(Response{Message: message, Data: data})
}

func RespNoContent(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusNoContent)
}

// RespError renders a CustomError with its own status. Anything else is logged
// and reported as a generic 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	if code == fiber.StatusInternalServerError {
		if log != nil {
			log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unexpected error: %v", err))
		}
		return ctx.Status(code).JSON(Response{Message: "an unexpected error occurred"})
	}
	return ctx.Status(code).JSON(Response{Message: err.Error()})
}

// ParamID reads a positive integer route parameter.
func ParamID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}
