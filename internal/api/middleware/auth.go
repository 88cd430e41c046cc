package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/petcare-mx/platform/internal/infrastructure/token"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxIdentity = "identity"
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxToken    = "caller_token"
)

// Auth validates the bearer JWT and injects its claims into the echo
// context. The raw token is stored too so handlers can pass it
// explicitly to downstream service calls.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxIdentity, claims[token.ClaimSubject])
			c.Set(CtxRole, claims[token.ClaimRole])
			// Numeric claims decode as float64 from JSON.
			if uid, ok := claims[token.ClaimUserID].(float64); ok {
				c.Set(CtxUserID, int64(uid))
			}
			c.Set(CtxToken, parts[1])

			return next(c)
		}
	}
}
