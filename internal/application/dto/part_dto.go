package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear un repuesto.
type CreatePartRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=60"`
	Name        string          `json:"name" validate:"required,min=1,max=120"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	MinQuantity int64           `json:"min_quantity" validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Active      *bool           `json:"active"`
}

// UpdatePartRequest entrada para actualizar un repuesto.
// La cantidad NO se edita por acá: el stock solo cambia vía movimientos.
type UpdatePartRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string          `json:"description"`
	MinQuantity *int64           `json:"min_quantity" validate:"omitempty,min=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Active      *bool            `json:"active"`
}

// PartResponse salida de un repuesto.
type PartResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	MinQuantity int64           `json:"min_quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Active      bool            `json:"active"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID        string    `json:"id"`
	PartID    string    `json:"part_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterMovementRequest body para POST /api/inventario/movimientos.
// Type ENTRADA suma stock; SALIDA lo descuenta (con control de stock suficiente).
type RegisterMovementRequest struct {
	PartID   string `json:"part_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=ENTRADA SALIDA"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"omitempty,max=180"`
}
