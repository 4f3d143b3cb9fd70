package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa un usuario de la API (auth).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | empleado
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
