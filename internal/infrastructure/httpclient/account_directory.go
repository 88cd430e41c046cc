package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

// AccountDirectory implements ports.AccountDirectory against the user
// service's public account endpoints. The caller's bearer token is an
// explicit parameter on every call; there is no ambient security
// context to read it from.
type AccountDirectory struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewAccountDirectory(baseURL string, timeout time.Duration, log zerolog.Logger) *AccountDirectory {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AccountDirectory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// rolePath maps an account role to its path segment in the user-service API.
func rolePath(role domain.Role) string {
	if role == domain.RoleVet {
		return "vet"
	}
	return "user"
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

type summaryResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type detailResponse struct {
	ID          int64                  `json:"id"`
	FullName    string                 `json:"full_name"`
	Email       string                 `json:"email"`
	PhoneNumber string                 `json:"phone_number"`
	Address     string                 `json:"address"`
	Vet         *domain.VetCredentials `json:"vet,omitempty"`
}

// Exists reports whether an account with the given role and id exists.
func (d *AccountDirectory) Exists(ctx context.Context, role domain.Role, id int64, callerToken string) (bool, error) {
	var body existsResponse
	found, err := d.get(ctx, fmt.Sprintf("%s/api/petcare/%s/exists/%d", d.baseURL, rolePath(role), id), callerToken, &body)
	if err != nil {
		return false, err
	}
	return found && body.Exists, nil
}

// GetSummary fetches the id + full-name view of an account.
func (d *AccountDirectory) GetSummary(ctx context.Context, role domain.Role, id int64, callerToken string) (*domain.AccountSummary, error) {
	var body summaryResponse
	found, err := d.get(ctx, fmt.Sprintf("%s/api/petcare/%s/%d", d.baseURL, rolePath(role), id), callerToken, &body)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.AccountSummary{ID: body.ID, FullName: body.FullName}, nil
}

// GetDetail fetches the full account view, including the vet block for
// veterinarian accounts.
func (d *AccountDirectory) GetDetail(ctx context.Context, role domain.Role, id int64, callerToken string) (*ports.AccountDetail, error) {
	var body detailResponse
	found, err := d.get(ctx, fmt.Sprintf("%s/api/petcare/%s/details/%d", d.baseURL, rolePath(role), id), callerToken, &body)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrAccountNotFound
	}
	return &ports.AccountDetail{
		ID:          body.ID,
		FullName:    body.FullName,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Address:     body.Address,
		Vet:         body.Vet,
	}, nil
}

func (d *AccountDirectory) get(ctx context.Context, url, callerToken string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: build request: %v", domain.ErrUpstreamUnavailable, err)
	}
	if callerToken != "" {
		req.Header.Set("Authorization", "Bearer "+callerToken)
	}

	resp, err := d.client.Do(req)
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
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return false, domain.ErrForbidden
	default:
		d.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("unexpected user-service response")
		return false, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
}
