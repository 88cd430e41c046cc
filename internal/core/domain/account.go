package domain

import "strings"

// Credential is the authentication source of truth for an account:
// the login identity, the bcrypt password hash, and the role baked
// into issued tokens. A Credential and its Profile always share the
// same numeric ID.
type Credential struct {
	ID           int64  `json:"id"`
	Identity     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Profile holds the display and contact information linked to a
// credential's numeric ID.
type Profile struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name,omitempty"`
	LastName       string `json:"last_name"`
	SecondLastName string `json:"second_last_name,omitempty"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	Address        string `json:"address,omitempty"`
}

// FullName joins the non-empty name parts with single spaces.
func (p Profile) FullName() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName, p.SecondLastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// VetCredentials carries the professional data that distinguishes a
// veterinarian account from an owner account.
type VetCredentials struct {
	LicenseNumber     string `json:"license_number"`
	ProfessionalTitle string `json:"professional_title"`
	Institution       string `json:"institution,omitempty"`
	Specialty         string `json:"specialty,omitempty"`
}

// Veterinarian is a profile plus professional credentials. Composition,
// not subtyping: the base profile is embedded as a plain value.
type Veterinarian struct {
	Profile
	Vet VetCredentials `json:"vet"`
}

// Account is the stored aggregate: one credential, one profile, and an
// optional vet block when Role is VETERINARIAN.
type Account struct {
	Credential Credential
	Profile    Profile
	Vet        *VetCredentials
}

// AccountSummary is the lightweight listing view of an account.
type AccountSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}
