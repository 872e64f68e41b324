package domain

import "time"

// Role is the closed set of caller roles the registry recognises.
type Role string

const (
	RoleUser     Role = "USER"
	RoleAdmin    Role = "ADMIN"
	RoleBusiness Role = "BUSINESS"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleBusiness:
		return true
	}
	return false
}

// User represents a registrar-side account (staff or read-only user).
// Business actors are not Users: they authenticate through the
// two-step phone verification flow and are bound to their entity.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
