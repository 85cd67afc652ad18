package domain

import "strings"

// Role is the closed set of account kinds the platform issues tokens for.
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleRecruiter Role = "RECRUITER"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleStudent, RoleRecruiter}

// Valid reports whether r is one of the platform roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleRecruiter
}

func (r Role) String() string { return string(r) }

// ParseRole accepts a role in any letter case. It returns ErrInvalidRole for
// anything outside Roles.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
