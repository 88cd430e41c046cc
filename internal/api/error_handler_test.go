package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/core/domain"
)

func render(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/petcare/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_AuthFailuresShareOne401(t *testing.T) {
	for _, err := range []error{
		domain.ErrIdentityNotFound,
		domain.ErrInvalidCredentials,
		domain.ErrProfileNotFound,
	} {
		status, body := render(t, err)
		if status != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", err, status)
		}
		if body.Code != http.StatusUnauthorized || body.Message != "Unauthorized" {
			t.Fatalf("%v: unexpected envelope: %+v", err, body)
		}
		// The response must not reveal which step failed.
		if body.Details != "invalid username or password" {
			t.Fatalf("%v: details leak failure kind: %q", err, body.Details)
		}
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrAccountExists, http.StatusConflict},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrPetExists, http.StatusConflict},
		{domain.ErrPetNotFound, http.StatusNotFound},
		{domain.ErrInvalidRequest, http.StatusBadRequest},
		{domain.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		status, body := render(t, tc.err)
		if status != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, status)
		}
		if body.Code != tc.want {
			t.Fatalf("%v: envelope code %d != status %d", tc.err, body.Code, tc.want)
		}
	}
}

func TestErrorHandler_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("dial tcp: connection refused"), domain.ErrUpstreamUnavailable)
	status, _ := render(t, wrapped)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("wrapped upstream error not recognized: %d", status)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "binding failed"))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.Details != "binding failed" {
		t.Fatalf("unexpected details: %q", body.Details)
	}
}

func TestErrorHandler_Unexpected(t *testing.T) {
	status, body := render(t, errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Details != "internal server error" {
		t.Fatalf("internal cause leaked: %q", body.Details)
	}
}
