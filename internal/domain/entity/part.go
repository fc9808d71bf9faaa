package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del taller con su stock disponible.
// Quantity nunca es negativa; un débito que la dejaría bajo cero se rechaza
// con domain.ErrInsufficientStock antes de tocar la fila.
type Part struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Quantity    int64           // stock actual
	MinQuantity int64           // umbral de stock bajo
	UnitPrice   decimal.Decimal // precio de venta vigente
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el repuesto está en o por debajo de su umbral mínimo.
func (p *Part) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}
