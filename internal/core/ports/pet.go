package ports

import (
	"context"
	"time"

	"github.com/petcare-mx/platform/internal/core/domain"
)

// CreatePetInput carries the data needed to register a pet.
type CreatePetInput struct {
	Name      string
	Species   string
	Breed     string
	BirthDate time.Time
	WeightKg  float64
	Gender    string
	OwnerID   int64
	// CallerToken is the bearer token of the requesting user, passed
	// explicitly to downstream account lookups.
	CallerToken string
}

// PetWithVet pairs a pet summary with the assigned vet, if any.
type PetWithVet struct {
	Pet domain.PetSummary
	Vet *domain.AccountSummary
}

// PetWithOwner pairs a pet summary with its owner.
type PetWithOwner struct {
	Pet   domain.PetSummary
	Owner domain.AccountSummary
}

// PetDetail is the full pet view used in detail composites.
type PetDetail struct {
	Name      string
	Species   string
	Breed     string
	BirthDate time.Time
	WeightKg  float64
	Gender    string
}

// PetOwnerDetail composes a pet detail with the owner's account detail.
type PetOwnerDetail struct {
	Pet   PetDetail
	Owner AccountDetail
}

// PetVetDetail composes a pet detail with the vet's account detail.
type PetVetDetail struct {
	Pet PetDetail
	Vet AccountDetail
}

// PetService defines the pet-service use cases. Operations that reach
// into the user service take the caller's token explicitly.
type PetService interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID int64, callerToken string) ([]PetWithVet, error)
	ListByVet(ctx context.Context, vetID int64, callerToken string) ([]PetWithOwner, error)
	DetailForOwner(ctx context.Context, petID, ownerID int64, callerToken string) (*PetOwnerDetail, error)
	DetailForVet(ctx context.Context, petID, vetID int64, callerToken string) (*PetVetDetail, error)
	AssignVet(ctx context.Context, petID, vetID int64, callerToken string) error
}

// PetRepository is the persistence contract for pets.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id int64) (*domain.Pet, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error)
	ListByVet(ctx context.Context, vetID int64) ([]*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) error
}

// AccountDirectory is the pet service's view of the user service:
// existence checks and account views fetched over HTTP with the
// caller's token passed through.
type AccountDirectory interface {
	Exists(ctx context.Context, role domain.Role, id int64, callerToken string) (bool, error)
	GetSummary(ctx context.Context, role domain.Role, id int64, callerToken string) (*domain.AccountSummary, error)
	GetDetail(ctx context.Context, role domain.Role, id int64, callerToken string) (*AccountDetail, error)
}
