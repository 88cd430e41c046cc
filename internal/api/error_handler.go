package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/core/domain"
)

// ErrorResponse is the canonical error envelope for all API errors:
// HTTP status code, reason phrase, and a free-text detail.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes. All
//     authentication failures share a single 401, so the response alone
//     cannot distinguish a missing identity from a wrong password.
//   - Logs unexpected errors internally without leaking details.
//   - Renders the {code, message, details} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, details := resolveError(err, log, c)
		_ = c.JSON(code, ErrorResponse{
			Code:    code,
			Message: http.StatusText(code),
			Details: details,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Every login failure kind collapses into one status; the distinct
	// kind survives only in logs and metrics.
	case errors.Is(err, domain.ErrIdentityNotFound),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many login attempts, try again later"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, "username or email already exists"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, domain.ErrPetExists):
		return http.StatusConflict, "pet already registered"
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, "pet not found"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "dependent service unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
