package handler

import "github.com/petcare-mx/platform/internal/core/domain"

// registerProfileRequest carries the profile fields shared by owner and
// veterinarian registrations.
type registerProfileRequest struct {
	Username       string `json:"username"         validate:"required,min=3"`
	Password       string `json:"password"         validate:"required,min=4"`
	FirstName      string `json:"first_name"       validate:"required"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"        validate:"required"`
	SecondLastName string `json:"second_last_name"`
	PhoneNumber    string `json:"phone_number"     validate:"required"`
	Email          string `json:"email"            validate:"required,email"`
	Address        string `json:"address"`
}

// vetCredentialsRequest carries the professional block of a
// veterinarian registration.
type vetCredentialsRequest struct {
	LicenseNumber     string `json:"license_number"     validate:"required"`
	ProfessionalTitle string `json:"professional_title" validate:"required"`
	Institution       string `json:"institution"`
	Specialty         string `json:"specialty"`
}

// registerVetRequest composes the base profile with the professional
// credentials block.
type registerVetRequest struct {
	registerProfileRequest
	Vet vetCredentialsRequest `json:"vet" validate:"required"`
}

type registeredResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type accountSummaryResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type vetCredentialsResponse struct {
	LicenseNumber     string `json:"license_number"`
	ProfessionalTitle string `json:"professional_title"`
	Institution       string `json:"institution,omitempty"`
	Specialty         string `json:"specialty,omitempty"`
}

type accountDetailResponse struct {
	ID          int64                   `json:"id"`
	FullName    string                  `json:"full_name"`
	Email       string                  `json:"email"`
	PhoneNumber string                  `json:"phone_number"`
	Address     string                  `json:"address,omitempty"`
	Vet         *vetCredentialsResponse `json:"vet,omitempty"`
}

type accountExistsResponse struct {
	Exists bool `json:"exists"`
}

func toVetResponse(vet *domain.VetCredentials) *vetCredentialsResponse {
	if vet == nil {
		return nil
	}
	return &vetCredentialsResponse{
		LicenseNumber:     vet.LicenseNumber,
		ProfessionalTitle: vet.ProfessionalTitle,
		Institution:       vet.Institution,
		Specialty:         vet.Specialty,
	}
}
