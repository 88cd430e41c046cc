// Package httpclient implements the outbound adapters that the auth
// and pet services use to reach the user service over HTTP.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// UserClient implements ports.CredentialStore and ports.ProfileStore
// against the user service's internal auth-info endpoints.
//
// Any transport-level failure (timeout, connection refused, 5xx,
// undecodable payload) is reported as domain.ErrUpstreamUnavailable so
// the orchestrator can fold it while keeping it distinguishable in
// logs. An empty 204/404 reply means legitimately absent.
type UserClient struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewUserClient creates a UserClient for the given user-service base
// URL (e.g. "http://usersvc:8081"). A default per-call timeout is
// applied when none is provided.
func NewUserClient(baseURL string, timeout time.Duration, log zerolog.Logger) *UserClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UserClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type authInfoResponse struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	EncodedPassword string `json:"encoded_password"`
	Role            string `json:"role"`
}

type authProfileResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	SecondLastName string `json:"second_last_name"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

// FindByIdentity fetches the credential record for identity. Returns
// domain.ErrIdentityNotFound when the user service reports no match.
func (c *UserClient) FindByIdentity(ctx context.Context, identity string) (*domain.Credential, error) {
	var body authInfoResponse
	found, err := c.get(ctx, c.baseURL+"/api/petcare/auth-info/"+identity, &body)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrIdentityNotFound
	}

	return &domain.Credential{
		ID:           body.ID,
		Identity:     body.Username,
		PasswordHash: body.EncodedPassword,
		Role:         domain.ParseRole(body.Role),
	}, nil
}

// FindByID fetches the profile record for a credential's numeric id.
// Returns domain.ErrProfileNotFound when no profile is linked.
func (c *UserClient) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	var body authProfileResponse
	found, err := c.get(ctx, fmt.Sprintf("%s/api/petcare/auth-info/details/%d", c.baseURL, id), &body)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrProfileNotFound
	}

	return &domain.Profile{
		ID:             body.ID,
		FirstName:      body.FirstName,
		MiddleName:     body.MiddleName,
		LastName:       body.LastName,
		SecondLastName: body.SecondLastName,
		PhoneNumber:    body.PhoneNumber,
		Email:          body.Email,
		Address:        body.Address,
	}, nil
}

// get performs an unauthenticated GET (the auth-info endpoints are
// internal-network only) and decodes a 200 body into out. The boolean
// result distinguishes "found" from "legitimately absent".
func (c *UserClient) get(ctx context.Context, url string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: build request: %v", domain.ErrUpstreamUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamUnavailable, err)
		}
		return true, nil
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		c.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("unexpected user-service response")
		return false, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
}
