package domain

import "time"

// Pet is the pet-service aggregate root. OwnerID references the owner
// account in the user service; VetID is zero until a veterinarian is
// assigned.
type Pet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	BirthDate time.Time `json:"birth_date"`
	WeightKg  float64   `json:"weight_kg"`
	Gender    string    `json:"gender"`
	OwnerID   int64     `json:"owner_id"`
	VetID     int64     `json:"vet_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PetSummary is the lightweight listing view of a pet.
type PetSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}
