package model

import "time"

// Role identifies what a user is allowed to see and do.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleAgent  Role = "AGENT"
	RoleTenant Role = "TENANT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleTenant:
		return true
	}
	return false
}

// User represents an account: admins, agents and tenants share one record type.
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               Role      `json:"role"`
	Phone              string    `json:"phone,omitempty"`
	PasswordHash       string    `json:"password_hash,omitempty"`
	AssignedPropertyID string    `json:"assigned_property_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to hand to API clients. The hash must
// survive store round-trips, so it is stripped here rather than with a
// json tag.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
