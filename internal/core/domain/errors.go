package domain

import "errors"

// Login failure taxonomy. Every failure aborts the remaining steps of
// the login sequence; the HTTP boundary folds all of them into a single
// authentication-failure response while logs and metrics keep the kind.
var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	// ErrUpstreamUnavailable marks a transport-level failure of a
	// dependent store call (timeout, connection refused, bad payload).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrTooManyAttempts     = errors.New("too many login attempts")
)

var (
	ErrAccountExists   = errors.New("username or email already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrForbidden       = errors.New("access forbidden")
	ErrInvalidRequest  = errors.New("invalid request")
)

var (
	ErrPetExists   = errors.New("pet already registered")
	ErrPetNotFound = errors.New("pet not found")
)
