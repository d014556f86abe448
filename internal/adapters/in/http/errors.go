package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/adapters/in/trigger"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps a use case error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, trigger.ErrTriggerTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, errs.ErrPartialCommit):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	if code != http.StatusInternalServerError {
		message += ": " + err.Error()
	} else {
		ctx.Logger().Error(err)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
