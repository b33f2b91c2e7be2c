package entity

// Role represents the type of role a principal can have in the system.
type Role string

const (
	// RoleAdmin is the single principal role allowed to mutate comments.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin:
		return true
	default:
		return false
	}
}

// Principal is the identity carried by a verified bearer token.
type Principal struct {
	Username string
	Role     Role
}
