package errors

import (
	"errors"
	"net/http"
)

// CustomError carries the HTTP status it should be rendered with.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &CustomError{Code: http.StatusUnauthorized, Message: msg}
}

func ForbiddenError(msg string) error {
	return &CustomError{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &CustomError{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg}
}

// CarUnavailable is returned when a blocking booking overlaps the requested window.
func CarUnavailable(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg}
}

func UserAlreadyExists(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg}
}

func ServiceUnavailable(msg string) error {
	return &CustomError{Code: http.StatusServiceUnavailable, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Message: msg}
}

// Code returns the HTTP status for err, 500 when err is not a CustomError.
func Code(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// Is reports whether err is a CustomError with the given status code.
func Is(err error, code int) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == code
}
