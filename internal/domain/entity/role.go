// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Role represents the kind of account behind an authenticated request.
type Role string

const (
	// RoleStudent is a student who subscribes to tiffin services.
	RoleStudent Role = "student"
	// RoleVendor is a vendor who sells tiffin services.
	RoleVendor Role = "vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleVendor:
		return true
	default:
		return false
	}
}

// Principal is the identity carried by an access token.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
