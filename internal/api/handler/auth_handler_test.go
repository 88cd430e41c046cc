package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, identity, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, identity, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, identity, password)
}

func loginContext(t *testing.T, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/petcare/auth/login", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, identity, password string) (*ports.LoginResult, error) {
			if identity != "user1" || password != "1234" {
				t.Fatalf("credentials not passed through: %q %q", identity, password)
			}
			return &ports.LoginResult{Token: "signed.jwt.token", FullName: "Naruto Uzumaki"}, nil
		},
	})

	c, rec := loginContext(t, `{"username":"user1","password":"1234"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["token"] != "signed.jwt.token" || body["full_name"] != "Naruto Uzumaki" {
		t.Fatalf("unexpected response: %v", body)
	}
}

func TestAuthHandler_Login_ServiceErrorPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := loginContext(t, `{"username":"user1","password":"wrong"}`)
	// The handler returns domain errors untouched; the central error
	// handler owns the status mapping.
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatalf("service called with invalid payload")
			return nil, nil
		},
	})

	for _, payload := range []string{
		`{"username":"user1"}`,
		`{"password":"1234"}`,
		`{}`,
	} {
		c, _ := loginContext(t, payload)
		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %v", payload, err)
		}
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatalf("service called with malformed body")
			return nil, nil
		},
	})

	c, _ := loginContext(t, `{not json`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %v", err)
	}
}
