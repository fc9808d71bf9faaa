package repository

import "github.com/malarguetech/taller-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
// Los movimientos son inmutables: solo alta y consulta.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByPart(partID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
