package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/api/metrics"
	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

// PetService implements pet registration and the cross-service
// composite views. Account lookups go through the directory with the
// caller's token passed explicitly.
type PetService struct {
	repo      ports.PetRepository
	directory ports.AccountDirectory
	log       zerolog.Logger
}

func NewPetService(repo ports.PetRepository, directory ports.AccountDirectory, log zerolog.Logger) *PetService {
	return &PetService{repo: repo, directory: directory, log: log}
}

// Exists reports whether a pet with the given name is registered.
func (s *PetService) Exists(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, name)
}

// Create registers a pet after confirming the owner account exists in
// the user service.
func (s *PetService) Create(ctx context.Context, input ports.CreatePetInput) (*domain.Pet, error) {
	if input.Name == "" || input.Species == "" || input.OwnerID == 0 {
		return nil, domain.ErrInvalidRequest
	}

	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPetExists
	}

	ownerExists, err := s.directory.Exists(ctx, domain.RoleOwner, input.OwnerID, input.CallerToken)
	if err != nil {
		s.log.Error().Err(err).Int64("owner_id", input.OwnerID).Msg("owner existence check failed")
		return nil, err
	}
	if !ownerExists {
		return nil, domain.ErrAccountNotFound
	}

	pet := &domain.Pet{
		Name:      input.Name,
		Species:   input.Species,
		Breed:     input.Breed,
		BirthDate: input.BirthDate,
		WeightKg:  input.WeightKg,
		Gender:    input.Gender,
		OwnerID:   input.OwnerID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create pet")
		return nil, err
	}

	s.log.Info().Str("name", created.Name).Int64("owner_id", created.OwnerID).Int64("id", created.ID).Msg("pet created")
	metrics.PetsCreatedTotal.WithLabelValues(created.Species).Inc()

	return created, nil
}

// ListByOwner returns the owner's pets, each with the assigned vet's
// summary when one is set.
func (s *PetService) ListByOwner(ctx context.Context, ownerID int64, callerToken string) ([]ports.PetWithVet, error) {
	pets, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PetWithVet, 0, len(pets))
	for _, p := range pets {
		item := ports.PetWithVet{Pet: domain.PetSummary{ID: p.ID, Name: p.Name, Species: p.Species}}
		if p.VetID != 0 {
			vet, err := s.directory.GetSummary(ctx, domain.RoleVet, p.VetID, callerToken)
			if err != nil {
				return nil, err
			}
			item.Vet = vet
		}
		out = append(out, item)
	}
	return out, nil
}

// ListByVet returns the pets assigned to a vet, each with its owner's
// summary.
func (s *PetService) ListByVet(ctx context.Context, vetID int64, callerToken string) ([]ports.PetWithOwner, error) {
	pets, err := s.repo.ListByVet(ctx, vetID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PetWithOwner, 0, len(pets))
	for _, p := range pets {
		owner, err := s.directory.GetSummary(ctx, domain.RoleOwner, p.OwnerID, callerToken)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.PetWithOwner{
			Pet:   domain.PetSummary{ID: p.ID, Name: p.Name, Species: p.Species},
			Owner: *owner,
		})
	}
	return out, nil
}

// DetailForOwner composes the pet detail with the owner's account detail.
func (s *PetService) DetailForOwner(ctx context.Context, petID, ownerID int64, callerToken string) (*ports.PetOwnerDetail, error) {
	detail, err := s.petDetail(ctx, petID)
	if err != nil {
		return nil, err
	}
	owner, err := s.directory.GetDetail(ctx, domain.RoleOwner, ownerID, callerToken)
	if err != nil {
		return nil, err
	}
	return &ports.PetOwnerDetail{Pet: *detail, Owner: *owner}, nil
}

// DetailForVet composes the pet detail with the vet's account detail.
func (s *PetService) DetailForVet(ctx context.Context, petID, vetID int64, callerToken string) (*ports.PetVetDetail, error) {
	detail, err := s.petDetail(ctx, petID)
	if err != nil {
		return nil, err
	}
	vet, err := s.directory.GetDetail(ctx, domain.RoleVet, vetID, callerToken)
	if err != nil {
		return nil, err
	}
	return &ports.PetVetDetail{Pet: *detail, Vet: *vet}, nil
}

// AssignVet links an existing veterinarian to a pet.
func (s *PetService) AssignVet(ctx context.Context, petID, vetID int64, callerToken string) error {
	pet, err := s.repo.FindByID(ctx, petID)
	if err != nil {
		return err
	}

	vetExists, err := s.directory.Exists(ctx, domain.RoleVet, vetID, callerToken)
	if err != nil {
		return err
	}
	if !vetExists {
		return domain.ErrAccountNotFound
	}

	pet.VetID = vetID
	if err := s.repo.Update(ctx, pet); err != nil {
		return err
	}

	s.log.Info().Int64("pet_id", petID).Int64("vet_id", vetID).Msg("veterinarian assigned")
	return nil
}

func (s *PetService) petDetail(ctx context.Context, petID int64) (*ports.PetDetail, error) {
	pet, err := s.repo.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	return &ports.PetDetail{
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate,
		WeightKg:  pet.WeightKg,
		Gender:    pet.Gender,
	}, nil
}
