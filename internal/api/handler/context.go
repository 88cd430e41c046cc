package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petcare-mx/platform/internal/api/middleware"
	"github.com/petcare-mx/platform/internal/core/domain"
)

// claims is the authenticated caller's identity as injected by the
// Auth middleware, including the raw token for explicit pass-through
// to downstream services.
type claims struct {
	Identity string
	Role     domain.Role
	UserID   int64
	Token    string
}

// callerClaims extracts the auth claims and fast-fails before any
// service call: a missing role means the middleware did not run, and a
// structurally valid token without the raw token in context is
// operationally unusable for cross-service calls.
func callerClaims(c echo.Context) (claims, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	tok, _ := c.Get(middleware.CtxToken).(string)
	if tok == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing caller token")
	}

	identity, _ := c.Get(middleware.CtxIdentity).(string)
	uid, _ := c.Get(middleware.CtxUserID).(int64)

	return claims{
		Identity: identity,
		Role:     domain.ParseRole(role),
		UserID:   uid,
		Token:    tok,
	}, nil
}
