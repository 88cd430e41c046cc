package ports

import (
	"context"

	"github.com/petcare-mx/platform/internal/core/domain"
)

// CredentialStore fetches the stored credential record for an identity.
// Implementations must be idempotent and side-effect-free. A lookup
// that fails at the transport level returns domain.ErrUpstreamUnavailable
// so callers can fold it while observability keeps the distinction.
type CredentialStore interface {
	FindByIdentity(ctx context.Context, identity string) (*domain.Credential, error)
}

// ProfileStore fetches the display profile linked to a credential's
// numeric ID. Same idempotence and failure contract as CredentialStore.
type ProfileStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Profile, error)
}

// PasswordVerifier compares a plaintext candidate against a stored
// one-way hash. Pure; plaintext equality is not an acceptable
// implementation.
type PasswordVerifier interface {
	Matches(candidate, storedHash string) bool
}

// TokenIssuer mints a signed, self-contained bearer token embedding
// identity, numeric id, and role. Expiry is issuer configuration.
type TokenIssuer interface {
	Issue(identity string, id int64, role domain.Role) (string, error)
}

// LoginResult is the composite produced by a successful login. It is
// transient: built per call, never persisted.
type LoginResult struct {
	Token    string
	FullName string
}

// AuthService is the login orchestrator contract.
type AuthService interface {
	Login(ctx context.Context, identity, password string) (*LoginResult, error)
}

// AttemptLimiter throttles repeated login failures per identity.
type AttemptLimiter interface {
	// Allow reports whether another attempt is permitted for identity.
	Allow(ctx context.Context, identity string) (bool, error)
	// RecordFailure counts a failed attempt against identity.
	RecordFailure(ctx context.Context, identity string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, identity string) error
}
