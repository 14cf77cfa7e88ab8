package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is derived from the identity provider's staff flags; the backend never
// writes identity rows.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleModerator Role = "moderator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleModerator:
		return true
	default:
		return false
	}
}

func (r Role) IsModerator() bool {
	return r == RoleModerator
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleFromFlags maps the external identity flags onto the two roles this
// backend distinguishes.
func RoleFromFlags(isStaff, isSuperuser bool) Role {
	if isStaff || isSuperuser {
		return RoleModerator
	}
	return RoleCustomer
}
