package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is the single domain error kind: a human-readable message plus the
// HTTP status it resolves to. Services normalize every failure into this
// shape; handlers pass it to one responder instead of mapping ad hoc.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return NewError(fiber.StatusNotFound, message)
}

func Internal(message string) *Error {
	return NewError(fiber.StatusInternalServerError, message)
}

// StatusOf resolves any error to an HTTP status. Anything that is not a
// domain Error is an unexpected failure and reports as 500.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return fiber.StatusInternalServerError
}
