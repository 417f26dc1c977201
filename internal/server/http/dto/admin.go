package dto

import "time"

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminCreateRequest describes the payload for POST /api/admin/users.
type AdminCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super_admin"`
}

// AdminUpdateRequest describes the payload for PUT /api/admin/users/:id.
// Absent fields keep their stored values.
type AdminUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Name     *string `json:"name"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin super_admin"`
}

// AdminResponse represents a staff account on the wire. The password hash
// never leaves the server.
type AdminResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// LoginResponse pairs the authenticated account with its session token.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
