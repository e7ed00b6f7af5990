package entity

import "time"

// UserRole rol de un usuario de la plataforma. Variante cerrada.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Valid indica si el valor pertenece al conjunto cerrado de roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User representa una cuenta de la plataforma (servicio de identidad).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName  string
	PhotoURL     string // opcional
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
