package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/petcare-mx/platform/internal/core/domain"
)

func TestAuthInfoHandler_GetAuthInfo(t *testing.T) {
	h := NewAuthInfoHandler(&stubAccountService{
		authInfoFn: func(_ context.Context, identity string) (*domain.Credential, error) {
			if identity != "user1" {
				t.Fatalf("identity not bound: %q", identity)
			}
			return &domain.Credential{ID: 1, Identity: "user1", PasswordHash: "$2a$10$abc", Role: domain.RoleOwner}, nil
		},
	})

	c, rec := jsonContext(t, http.MethodGet, "/api/petcare/auth-info/user1", "")
	c.SetParamNames("username")
	c.SetParamValues("user1")

	if err := h.GetAuthInfo(c); err != nil {
		t.Fatalf("get auth info: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body authInfoView
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The stored hash crosses this internal boundary by contract.
	if body.EncodedPassword != "$2a$10$abc" || body.Role != "OWNER" || body.ID != 1 {
		t.Fatalf("unexpected view: %+v", body)
	}
}

func TestAuthInfoHandler_GetAuthInfo_Absent(t *testing.T) {
	h := NewAuthInfoHandler(&stubAccountService{
		authInfoFn: func(context.Context, string) (*domain.Credential, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	c, rec := jsonContext(t, http.MethodGet, "/api/petcare/auth-info/nadie", "")
	c.SetParamNames("username")
	c.SetParamValues("nadie")

	if err := h.GetAuthInfo(c); err != nil {
		t.Fatalf("get auth info: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for unknown username, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestAuthInfoHandler_GetAuthProfile(t *testing.T) {
	h := NewAuthInfoHandler(&stubAccountService{
		authProfileFn: func(_ context.Context, id int64) (*domain.Profile, error) {
			if id != 7 {
				t.Fatalf("id not bound: %d", id)
			}
			return &domain.Profile{ID: 7, FirstName: "Naruto", LastName: "Uzumaki", Email: "naruto@konoha.jp"}, nil
		},
	})

	c, rec := jsonContext(t, http.MethodGet, "/api/petcare/auth-info/details/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.GetAuthProfile(c); err != nil {
		t.Fatalf("get auth profile: %v", err)
	}

	var body authProfileView
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.FirstName != "Naruto" || body.LastName != "Uzumaki" {
		t.Fatalf("unexpected profile: %+v", body)
	}
}

func TestAuthInfoHandler_GetAuthProfile_Absent(t *testing.T) {
	h := NewAuthInfoHandler(&stubAccountService{
		authProfileFn: func(context.Context, int64) (*domain.Profile, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	c, rec := jsonContext(t, http.MethodGet, "/api/petcare/auth-info/details/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.GetAuthProfile(c); err != nil {
		t.Fatalf("get auth profile: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for unknown id, got %d", rec.Code)
	}
}
