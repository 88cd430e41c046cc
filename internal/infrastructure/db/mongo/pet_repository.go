package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petcare-mx/platform/internal/core/domain"
)

const petsCollection = "pets"

// MongoPetRepository persists pets with sequential numeric ids.
type MongoPetRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *MongoPetRepository {
	return &MongoPetRepository{db: db, coll: db.Collection(petsCollection)}
}

type mongoPet struct {
	ID        int64   `bson:"_id"`
	Name      string  `bson:"name"`
	Species   string  `bson:"species"`
	Breed     string  `bson:"breed,omitempty"`
	BirthDate int64   `bson:"birth_date"`
	WeightKg  float64 `bson:"weight_kg"`
	Gender    string  `bson:"gender"`
	OwnerID   int64   `bson:"owner_id"`
	VetID     int64   `bson:"vet_id,omitempty"`
	CreatedAt int64   `bson:"created_at"`
}

func (r *MongoPetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	id, err := nextSequence(ctx, r.db, petsCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoPet{
		ID:        id,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate.Unix(),
		WeightKg:  pet.WeightKg,
		Gender:    pet.Gender,
		OwnerID:   pet.OwnerID,
		VetID:     pet.VetID,
		CreatedAt: pet.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPetExists
		}
		return nil, fmt.Errorf("insert pet: %w", err)
	}

	return toPet(doc), nil
}

func (r *MongoPetRepository) FindByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var doc mongoPet
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return toPet(doc), nil
}

func (r *MongoPetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("count pets: %w", err)
	}
	return n > 0, nil
}

func (r *MongoPetRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoPetRepository) ListByVet(ctx context.Context, vetID int64) ([]*domain.Pet, error) {
	return r.list(ctx, bson.M{"vet_id": vetID})
}

// Update replaces the mutable fields of an existing pet document.
func (r *MongoPetRepository) Update(ctx context.Context, pet *domain.Pet) error {
	update := bson.M{"$set": bson.M{
		"name":      pet.Name,
		"species":   pet.Species,
		"breed":     pet.Breed,
		"weight_kg": pet.WeightKg,
		"vet_id":    pet.VetID,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": pet.ID}, update)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *MongoPetRepository) list(ctx context.Context, filter bson.M) ([]*domain.Pet, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []*domain.Pet
	for cursor.Next(ctx) {
		var doc mongoPet
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		pets = append(pets, toPet(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}

func toPet(doc mongoPet) *domain.Pet {
	return &domain.Pet{
		ID:        doc.ID,
		Name:      doc.Name,
		Species:   doc.Species,
		Breed:     doc.Breed,
		BirthDate: unixToTime(doc.BirthDate),
		WeightKg:  doc.WeightKg,
		Gender:    doc.Gender,
		OwnerID:   doc.OwnerID,
		VetID:     doc.VetID,
		CreatedAt: unixToTime(doc.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
