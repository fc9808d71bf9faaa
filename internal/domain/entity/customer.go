package entity

import "time"

// Customer representa un cliente del taller.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string // opcional; sin email no se envían notificaciones
	Address   string
	CreatedAt time.Time
}
