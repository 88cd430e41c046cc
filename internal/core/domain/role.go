package domain

// Role classifies an account. OWNER is a pet owner, VETERINARIAN a
// professional with a vet profile attached. Unrecognised values parse
// to RoleUnknown rather than failing.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleVet     Role = "VETERINARIAN"
	RoleUnknown Role = "UNKNOWN"
)

// ParseRole maps a stored or transmitted role string to a Role.
func ParseRole(s string) Role {
	switch s {
	case string(RoleOwner):
		return RoleOwner
	case string(RoleVet):
		return RoleVet
	default:
		return RoleUnknown
	}
}

// Valid reports whether the role is one of the two registered kinds.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleVet
}
