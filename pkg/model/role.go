package model

import (
	"fmt"
	"strings"
)

// Role is the flat access role carried by an Identity.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleClient   Role = "client"
	RoleTester   Role = "tester"
	RoleEmployee Role = "employee"
)

// Roles returns every known role, in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEmployee, RoleTester, RoleClient}
}

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleTester, RoleEmployee:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// HasRole reports whether role is a member of allowed, ignoring case.
// This is the only role comparison in the code base; guards, navigation
// and view conditionals all go through it.
func HasRole(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if strings.EqualFold(string(role), string(a)) {
			return true
		}
	}
	return false
}
