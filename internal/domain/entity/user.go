package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User representa una cuenta del sistema. Un usuario puede ser dueño de varios negocios.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // admin, user
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el usuario puede iniciar sesión.
func (u *User) IsActive() bool { return u.Status == UserStatusActive }

// UserWithStats usuario con la cantidad de negocios que posee (vista de administración).
type UserWithStats struct {
	User
	BusinessCount int
}
