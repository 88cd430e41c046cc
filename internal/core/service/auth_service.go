package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/api/metrics"
	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

// AuthService sequences credential lookup, password verification,
// profile lookup, and token issuance into one atomic login operation.
// The first failing step aborts the rest; no partial result is ever
// returned and nothing is retried.
type AuthService struct {
	credentials ports.CredentialStore
	profiles    ports.ProfileStore
	verifier    ports.PasswordVerifier
	issuer      ports.TokenIssuer
	limiter     ports.AttemptLimiter
	log         zerolog.Logger
}

func NewAuthService(
	credentials ports.CredentialStore,
	profiles ports.ProfileStore,
	verifier ports.PasswordVerifier,
	issuer ports.TokenIssuer,
	limiter ports.AttemptLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		credentials: credentials,
		profiles:    profiles,
		verifier:    verifier,
		issuer:      issuer,
		limiter:     limiter,
		log:         log,
	}
}

// Login authenticates identity/password and returns a signed token plus
// the account's display name.
//
// Transport failures of either store are folded into the nearest
// not-found failure for the caller; logs and metrics keep the
// distinction. "Identity not found" and "invalid password" surface
// identically at the HTTP boundary, so neither leaks account existence.
func (s *AuthService) Login(ctx context.Context, identity, password string) (*ports.LoginResult, error) {
	if identity == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	start := time.Now()

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, identity)
		if err != nil {
			// A broken limiter must not lock everyone out.
			s.log.Warn().Err(err).Str("identity", identity).Msg("attempt limiter unavailable, allowing login")
		} else if !allowed {
			s.observe("throttled", start)
			return nil, domain.ErrTooManyAttempts
		}
	}

	cred, err := s.credentials.FindByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			s.log.Error().Err(err).Str("identity", identity).Msg("credential store unavailable")
			metrics.UpstreamErrorsTotal.WithLabelValues("credential_store", "transport").Inc()
			s.observe("upstream_error", start)
			return nil, domain.ErrIdentityNotFound
		}
		s.log.Debug().Str("identity", identity).Msg("identity not found")
		s.observe("identity_not_found", start)
		return nil, domain.ErrIdentityNotFound
	}

	if !s.verifier.Matches(password, cred.PasswordHash) {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, identity); err != nil {
				s.log.Warn().Err(err).Str("identity", identity).Msg("failed to record login failure")
			}
		}
		s.log.Debug().Str("identity", identity).Msg("password mismatch")
		s.observe("invalid_credentials", start)
		return nil, domain.ErrInvalidCredentials
	}

	// The profile is addressed by the numeric id the credential store
	// returned, never by the caller-supplied identity.
	profile, err := s.profiles.FindByID(ctx, cred.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			s.log.Error().Err(err).Int64("id", cred.ID).Msg("profile store unavailable")
			metrics.UpstreamErrorsTotal.WithLabelValues("profile_store", "transport").Inc()
			s.observe("upstream_error", start)
			return nil, domain.ErrProfileNotFound
		}
		// A credential without a profile is a data-integrity error, kept
		// distinct from the credential failures above.
		s.log.Error().Int64("id", cred.ID).Str("identity", identity).Msg("credential has no linked profile")
		s.observe("profile_not_found", start)
		return nil, domain.ErrProfileNotFound
	}

	token, err := s.issuer.Issue(cred.Identity, cred.ID, cred.Role)
	if err != nil {
		s.log.Error().Err(err).Str("identity", identity).Msg("token issuance failed")
		s.observe("token_error", start)
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, identity); err != nil {
			s.log.Warn().Err(err).Str("identity", identity).Msg("failed to reset attempt counter")
		}
	}

	s.log.Info().Str("identity", identity).Int64("id", cred.ID).Str("role", string(cred.Role)).Msg("login succeeded")
	s.observe("success", start)

	return &ports.LoginResult{Token: token, FullName: profile.FullName()}, nil
}

func (s *AuthService) observe(result string, start time.Time) {
	metrics.LoginsTotal.WithLabelValues(result).Inc()
	metrics.LoginDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
