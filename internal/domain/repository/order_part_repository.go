package repository

import "github.com/malarguetech/taller-api/internal/domain/entity"

// OrderPartRepository define el puerto de persistencia para líneas de orden.
// Las líneas pertenecen a la orden: borrar la orden borra sus líneas (cascada).
type OrderPartRepository interface {
	Create(item *entity.OrderPart) error
	GetByID(id string) (*entity.OrderPart, error)
	ListByOrder(orderID string) ([]*entity.OrderPart, error)
	Delete(id string) error
}
