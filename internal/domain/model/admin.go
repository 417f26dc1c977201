package model

import "time"

// Role distinguishes staff permission levels.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AdminUser represents a staff account.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// AdminPatch carries partial admin account updates. The password field, when
// set, holds an already-hashed credential.
type AdminPatch struct {
	Email        *string
	PasswordHash *string
	Name         *string
	Role         *Role
}
