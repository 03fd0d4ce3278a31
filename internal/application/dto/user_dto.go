package dto

import "time"

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=200"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AdminUserResponse usuario con estadísticas para el panel de administración.
type AdminUserResponse struct {
	UserResponse
	BusinessCount int `json:"business_count"`
}

// AdminUserListResponse lista paginada de usuarios.
type AdminUserListResponse struct {
	Items []AdminUserResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// UpdateUserStatusRequest entrada para suspender o reactivar una cuenta.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}
