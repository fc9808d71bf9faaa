package entity

import (
	"fmt"
	"time"
)

// Device representa un equipo ingresado al taller, siempre asociado a un cliente.
type Device struct {
	ID           string
	CustomerID   string
	Type         string // Notebook, PC de escritorio, Impresora...
	Brand        string
	Model        string
	SerialNumber string
	IntakeNotes  string
	CreatedAt    time.Time
}

// Description devuelve la descripción corta usada en notificaciones y comprobantes.
func (d *Device) Description() string {
	return fmt.Sprintf("%s %s %s", d.Type, d.Brand, d.Model)
}
