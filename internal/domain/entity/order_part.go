package entity

import "github.com/shopspring/decimal"

// OrderPart asocia un repuesto a una orden de reparación (línea de la orden).
//
// UnitPrice se captura al momento de agregar la línea: cambios posteriores en
// el precio del repuesto no alteran órdenes históricas. El stock NO se reserva
// al agregar la línea; el descuento ocurre recién cuando la orden llega a
// REPARADO.
type OrderPart struct {
	ID        string
	OrderID   string
	PartID    string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal devuelve cantidad por precio capturado.
func (op *OrderPart) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(op.Quantity).Mul(op.UnitPrice)
}
