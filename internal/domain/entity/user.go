package entity

import "time"

// Roles de usuario del taller.
const (
	RoleDueno   = "DUENO"
	RoleTecnico = "TECNICO"
)

// User representa un usuario interno (dueño o técnico).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // DUENO | TECNICO
	Phone        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
