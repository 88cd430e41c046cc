package ports

import (
	"context"

	"github.com/petcare-mx/platform/internal/core/domain"
)

// RegisterAccountInput carries everything needed to create an account.
// Vet is nil for owner registrations and required for veterinarians.
type RegisterAccountInput struct {
	Identity string
	Password string
	Role     domain.Role
	Profile  ProfileInput
	Vet      *VetInput
}

// ProfileInput holds the profile fields supplied at registration.
type ProfileInput struct {
	FirstName      string
	MiddleName     string
	LastName       string
	SecondLastName string
	PhoneNumber    string
	Email          string
	Address        string
}

// VetInput holds the professional fields for a veterinarian registration.
type VetInput struct {
	LicenseNumber     string
	ProfessionalTitle string
	Institution       string
	Specialty         string
}

// AccountDetail is the full profile view returned by GetDetail. Vet is
// populated only for veterinarian accounts.
type AccountDetail struct {
	ID          int64
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	Vet         *domain.VetCredentials
}

// AccountService is the capability interface for identity-owned
// accounts. One implementation serves both account kinds; operations
// take the role as a tag instead of splitting into per-kind services.
type AccountService interface {
	Exists(ctx context.Context, role domain.Role, id int64) (bool, error)
	Register(ctx context.Context, input RegisterAccountInput) (*domain.Account, error)
	GetSummary(ctx context.Context, role domain.Role, id int64) (*domain.AccountSummary, error)
	GetDetail(ctx context.Context, role domain.Role, id int64) (*AccountDetail, error)
	List(ctx context.Context, role domain.Role) ([]domain.AccountSummary, error)

	// AuthInfo and AuthProfile back the internal endpoints consumed by
	// the auth service during login.
	AuthInfo(ctx context.Context, identity string) (*domain.Credential, error)
	AuthProfile(ctx context.Context, id int64) (*domain.Profile, error)
}

// AccountRepository is the persistence contract for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByIdentity(ctx context.Context, identity string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	ExistsIdentityOrEmail(ctx context.Context, identity, email string) (bool, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Account, error)
}

// PasswordHasher produces the one-way hash stored at registration.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
