package http

import (
	"errors"
	"net/http"

	"lytefood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps the error taxonomy to HTTP status codes. Authentication
// failures are mapped by the middleware before domain errors come into play,
// so ErrNotAuthorized here means a role or ownership refusal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrStateConflict), errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrVerificationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders the error with its mapped status. Internal errors keep a
// generic message so storage details never leak to clients.
func writeError(ctx echo.Context, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
