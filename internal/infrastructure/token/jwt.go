// Package token implements the bearer token issuer on HS256 JWTs.
//
// Tokens are self-contained: downstream services verify the signature
// with the shared secret and read the claims without re-contacting the
// identity store.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petcare-mx/platform/internal/core/domain"
)

// Claim keys shared between the issuer and the auth middleware.
const (
	ClaimSubject = "sub"
	ClaimUserID  = "uid"
	ClaimRole    = "role"
)

// JWTIssuer mints HS256-signed tokens carrying identity, numeric id,
// and role, with iat/exp stamped from the configured TTL.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given identity. Claims are fixed at issue
// time and immutable afterwards.
func (i *JWTIssuer) Issue(identity string, id int64, role domain.Role) (string, error) {
	now := i.now().UTC()
	claims := jwt.MapClaims{
		ClaimSubject: identity,
		ClaimUserID:  id,
		ClaimRole:    string(role),
		"iat":        now.Unix(),
		"exp":        now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
