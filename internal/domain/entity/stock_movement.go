package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementEntrada = "ENTRADA"
	MovementSalida  = "SALIDA"
)

// StockMovement es el registro inmutable de un cambio de stock de un repuesto.
// Se crea únicamente como efecto de un débito/crédito del libro de inventario,
// en la misma transacción, y nunca se modifica ni borra por el flujo normal.
type StockMovement struct {
	ID        string
	PartID    string
	Type      string // ENTRADA | SALIDA
	Quantity  int64  // siempre positiva; el signo lo da Type
	Reason    string
	CreatedAt time.Time
}
