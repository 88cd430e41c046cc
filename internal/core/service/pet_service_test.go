package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

type fakePetRepo struct {
	nextID int64
	pets   map[int64]*domain.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[int64]*domain.Pet{}}
}

func (r *fakePetRepo) Create(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.nextID++
	clone := *pet
	clone.ID = r.nextID
	r.pets[r.nextID] = &clone
	return &clone, nil
}

func (r *fakePetRepo) FindByID(_ context.Context, id int64) (*domain.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePetRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, p := range r.pets {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePetRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Pet, error) {
	var out []*domain.Pet
	for id := int64(1); id <= r.nextID; id++ {
		p, ok := r.pets[id]
		if ok && p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) ListByVet(_ context.Context, vetID int64) ([]*domain.Pet, error) {
	var out []*domain.Pet
	for id := int64(1); id <= r.nextID; id++ {
		p, ok := r.pets[id]
		if ok && p.VetID == vetID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) Update(_ context.Context, pet *domain.Pet) error {
	if _, ok := r.pets[pet.ID]; !ok {
		return domain.ErrPetNotFound
	}
	clone := *pet
	r.pets[pet.ID] = &clone
	return nil
}

// stubDirectory records the tokens forwarded to it so tests can assert
// explicit token passing.
type stubDirectory struct {
	owners     map[int64]string
	vets       map[int64]string
	seenTokens []string
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{owners: map[int64]string{}, vets: map[int64]string{}}
}

func (d *stubDirectory) names(role domain.Role) map[int64]string {
	if role == domain.RoleVet {
		return d.vets
	}
	return d.owners
}

func (d *stubDirectory) Exists(_ context.Context, role domain.Role, id int64, callerToken string) (bool, error) {
	d.seenTokens = append(d.seenTokens, callerToken)
	_, ok := d.names(role)[id]
	return ok, nil
}

func (d *stubDirectory) GetSummary(_ context.Context, role domain.Role, id int64, callerToken string) (*domain.AccountSummary, error) {
	d.seenTokens = append(d.seenTokens, callerToken)
	name, ok := d.names(role)[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.AccountSummary{ID: id, FullName: name}, nil
}

func (d *stubDirectory) GetDetail(_ context.Context, role domain.Role, id int64, callerToken string) (*ports.AccountDetail, error) {
	d.seenTokens = append(d.seenTokens, callerToken)
	name, ok := d.names(role)[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &ports.AccountDetail{ID: id, FullName: name, Email: "x@y.mx"}, nil
}

func newPetFixture() (*PetService, *fakePetRepo, *stubDirectory) {
	repo := newFakePetRepo()
	dir := newStubDirectory()
	dir.owners[10] = "Naruto Uzumaki"
	dir.vets[20] = "Tsunade Senju"
	return NewPetService(repo, dir, zerolog.Nop()), repo, dir
}

func petInput(name string, ownerID int64) ports.CreatePetInput {
	return ports.CreatePetInput{
		Name:        name,
		Species:     "dog",
		Breed:       "akita",
		WeightKg:    12.5,
		Gender:      "male",
		OwnerID:     ownerID,
		CallerToken: "tok-abc",
	}
}

func TestPetService_Create(t *testing.T) {
	svc, repo, dir := newPetFixture()

	pet, err := svc.Create(context.Background(), petInput("Akamaru", 10))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if pet.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if pet.CreatedAt.IsZero() {
		t.Fatalf("expected created timestamp")
	}
	if _, err := repo.FindByID(context.Background(), pet.ID); err != nil {
		t.Fatalf("pet not persisted: %v", err)
	}
	if len(dir.seenTokens) == 0 || dir.seenTokens[0] != "tok-abc" {
		t.Fatalf("caller token not forwarded to directory: %v", dir.seenTokens)
	}
}

func TestPetService_Create_UnknownOwner(t *testing.T) {
	svc, repo, _ := newPetFixture()

	_, err := svc.Create(context.Background(), petInput("Akamaru", 99))
	if err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if len(repo.pets) != 0 {
		t.Fatalf("pet created for nonexistent owner")
	}
}

func TestPetService_Create_DuplicateName(t *testing.T) {
	svc, _, _ := newPetFixture()

	if _, err := svc.Create(context.Background(), petInput("Akamaru", 10)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), petInput("Akamaru", 10)); err != domain.ErrPetExists {
		t.Fatalf("expected ErrPetExists, got %v", err)
	}
}

func TestPetService_Create_Invalid(t *testing.T) {
	svc, _, _ := newPetFixture()

	in := petInput("", 10)
	if _, err := svc.Create(context.Background(), in); err != domain.ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest for empty name, got %v", err)
	}
	in = petInput("Akamaru", 0)
	if _, err := svc.Create(context.Background(), in); err != domain.ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest for missing owner, got %v", err)
	}
}

func TestPetService_AssignVetAndListByOwner(t *testing.T) {
	svc, _, _ := newPetFixture()

	pet, err := svc.Create(context.Background(), petInput("Akamaru", 10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.AssignVet(context.Background(), pet.ID, 20, "tok-abc"); err != nil {
		t.Fatalf("assign vet: %v", err)
	}

	list, err := svc.ListByOwner(context.Background(), 10, "tok-abc")
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 pet, got %d", len(list))
	}
	if list[0].Vet == nil || list[0].Vet.FullName != "Tsunade Senju" {
		t.Fatalf("vet summary not attached: %+v", list[0].Vet)
	}
}

func TestPetService_AssignVet_UnknownVet(t *testing.T) {
	svc, repo, _ := newPetFixture()

	pet, err := svc.Create(context.Background(), petInput("Akamaru", 10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.AssignVet(context.Background(), pet.ID, 99, "tok-abc"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), pet.ID)
	if stored.VetID != 0 {
		t.Fatalf("vet assigned despite missing account")
	}
}

func TestPetService_ListByVet(t *testing.T) {
	svc, _, _ := newPetFixture()

	pet, err := svc.Create(context.Background(), petInput("Akamaru", 10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.AssignVet(context.Background(), pet.ID, 20, "tok-abc"); err != nil {
		t.Fatalf("assign vet: %v", err)
	}

	list, err := svc.ListByVet(context.Background(), 20, "tok-abc")
	if err != nil {
		t.Fatalf("list by vet: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 pet, got %d", len(list))
	}
	if list[0].Owner.FullName != "Naruto Uzumaki" {
		t.Fatalf("owner summary not attached: %+v", list[0].Owner)
	}
}

func TestPetService_DetailComposites(t *testing.T) {
	svc, _, _ := newPetFixture()

	pet, err := svc.Create(context.Background(), petInput("Akamaru", 10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ownerDetail, err := svc.DetailForOwner(context.Background(), pet.ID, 10, "tok-abc")
	if err != nil {
		t.Fatalf("detail for owner: %v", err)
	}
	if ownerDetail.Pet.Name != "Akamaru" || ownerDetail.Owner.FullName != "Naruto Uzumaki" {
		t.Fatalf("unexpected owner composite: %+v", ownerDetail)
	}

	if err := svc.AssignVet(context.Background(), pet.ID, 20, "tok-abc"); err != nil {
		t.Fatalf("assign vet: %v", err)
	}
	vetDetail, err := svc.DetailForVet(context.Background(), pet.ID, 20, "tok-abc")
	if err != nil {
		t.Fatalf("detail for vet: %v", err)
	}
	if vetDetail.Vet.FullName != "Tsunade Senju" {
		t.Fatalf("unexpected vet composite: %+v", vetDetail)
	}

	if _, err := svc.DetailForOwner(context.Background(), 999, 10, "tok-abc"); err != domain.ErrPetNotFound {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}
