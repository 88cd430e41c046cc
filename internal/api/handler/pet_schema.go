package handler

import (
	"time"

	"github.com/petcare-mx/platform/internal/core/ports"
)

type createPetRequest struct {
	Name      string    `json:"name"       validate:"required"`
	Species   string    `json:"species"    validate:"required"`
	Breed     string    `json:"breed"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	WeightKg  float64   `json:"weight_kg"  validate:"required,gt=0"`
	Gender    string    `json:"gender"     validate:"required,oneof=male female"`
	OwnerID   int64     `json:"owner_id"   validate:"required,gt=0"`
}

type petCreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type petSummaryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

type petWithVetResponse struct {
	Pet petSummaryResponse      `json:"pet"`
	Vet *accountSummaryResponse `json:"vet,omitempty"`
}

type petWithOwnerResponse struct {
	Pet   petSummaryResponse     `json:"pet"`
	Owner accountSummaryResponse `json:"owner"`
}

type petDetailResponse struct {
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	BirthDate time.Time `json:"birth_date"`
	WeightKg  float64   `json:"weight_kg"`
	Gender    string    `json:"gender"`
}

type petOwnerDetailResponse struct {
	Pet   petDetailResponse     `json:"pet"`
	Owner accountDetailResponse `json:"owner"`
}

type petVetDetailResponse struct {
	Pet petDetailResponse     `json:"pet"`
	Vet accountDetailResponse `json:"vet"`
}

type petExistsResponse struct {
	Exists bool `json:"exists"`
}

func toPetDetailResponse(d ports.PetDetail) petDetailResponse {
	return petDetailResponse{
		Name:      d.Name,
		Species:   d.Species,
		Breed:     d.Breed,
		BirthDate: d.BirthDate,
		WeightKg:  d.WeightKg,
		Gender:    d.Gender,
	}
}

func toAccountDetailResponse(d ports.AccountDetail) accountDetailResponse {
	return accountDetailResponse{
		ID:          d.ID,
		FullName:    d.FullName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		Vet:         toVetResponse(d.Vet),
	}
}
