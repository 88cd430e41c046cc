package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/api/metrics"
	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

// AccountService implements the capability interface for identity-owned
// accounts. A single implementation serves owners and veterinarians;
// every read operation takes the role as a tag and only matches
// accounts of that kind.
type AccountService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, log: log}
}

// Register creates a new account after checking identity/email
// uniqueness. The password is bcrypt-hashed before it reaches the
// repository; the plaintext never leaves this method.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterAccountInput) (*domain.Account, error) {
	if input.Identity == "" || input.Password == "" || !input.Role.Valid() {
		return nil, domain.ErrInvalidRequest
	}
	if input.Role == domain.RoleVet && input.Vet == nil {
		return nil, domain.ErrInvalidRequest
	}

	exists, err := s.repo.ExistsIdentityOrEmail(ctx, input.Identity, input.Profile.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAccountExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Credential: domain.Credential{
			Identity:     input.Identity,
			PasswordHash: hash,
			Role:         input.Role,
		},
		Profile: domain.Profile{
			FirstName:      input.Profile.FirstName,
			MiddleName:     input.Profile.MiddleName,
			LastName:       input.Profile.LastName,
			SecondLastName: input.Profile.SecondLastName,
			PhoneNumber:    input.Profile.PhoneNumber,
			Email:          input.Profile.Email,
			Address:        input.Profile.Address,
		},
	}
	if input.Vet != nil {
		account.Vet = &domain.VetCredentials{
			LicenseNumber:     input.Vet.LicenseNumber,
			ProfessionalTitle: input.Vet.ProfessionalTitle,
			Institution:       input.Vet.Institution,
			Specialty:         input.Vet.Specialty,
		}
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		s.log.Error().Err(err).Str("identity", input.Identity).Msg("failed to create account")
		return nil, err
	}

	s.log.Info().Str("identity", input.Identity).Str("role", string(input.Role)).Int64("id", created.Credential.ID).Msg("account registered")
	metrics.AccountsRegisteredTotal.WithLabelValues(string(input.Role)).Inc()

	return created, nil
}

// Exists reports whether an account of the given role exists under id.
func (s *AccountService) Exists(ctx context.Context, role domain.Role, id int64) (bool, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return account.Credential.Role == role, nil
}

// GetSummary returns the id + full-name view of an account matching the
// role tag.
func (s *AccountService) GetSummary(ctx context.Context, role domain.Role, id int64) (*domain.AccountSummary, error) {
	account, err := s.findByRole(ctx, role, id)
	if err != nil {
		return nil, err
	}
	return &domain.AccountSummary{ID: account.Credential.ID, FullName: account.Profile.FullName()}, nil
}

// GetDetail returns the full profile view; the vet block is attached
// only for veterinarian accounts.
func (s *AccountService) GetDetail(ctx context.Context, role domain.Role, id int64) (*ports.AccountDetail, error) {
	account, err := s.findByRole(ctx, role, id)
	if err != nil {
		return nil, err
	}
	return &ports.AccountDetail{
		ID:          account.Credential.ID,
		FullName:    account.Profile.FullName(),
		Email:       account.Profile.Email,
		PhoneNumber: account.Profile.PhoneNumber,
		Address:     account.Profile.Address,
		Vet:         account.Vet,
	}, nil
}

// List returns summaries of every account with the given role.
func (s *AccountService) List(ctx context.Context, role domain.Role) ([]domain.AccountSummary, error) {
	accounts, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, domain.AccountSummary{
			ID:       a.Credential.ID,
			FullName: a.Profile.FullName(),
		})
	}
	return summaries, nil
}

// AuthInfo returns the stored credential for identity. Backs the
// internal endpoint the auth service calls during login.
func (s *AccountService) AuthInfo(ctx context.Context, identity string) (*domain.Credential, error) {
	account, err := s.repo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	cred := account.Credential
	return &cred, nil
}

// AuthProfile returns the profile linked to a credential's numeric id.
func (s *AccountService) AuthProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := account.Profile
	return &profile, nil
}

func (s *AccountService) findByRole(ctx context.Context, role domain.Role, id int64) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.Credential.Role != role {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
