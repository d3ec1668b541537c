package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages donors, patients and matches.
	RoleAdmin Role = "admin"
	// RoleDonor is a registered donor browsing their own dashboard.
	RoleDonor Role = "donor"
	// RolePatient is a patient (or their carer) browsing the patient dashboard.
	RolePatient Role = "patient"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RolePatient:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny checks if the roles slice contains at least one of the given roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// String joins the roles with " or ".
func (rs Roles) String() string {
	return strings.Join(rs.ToStrings(), " or ")
}
