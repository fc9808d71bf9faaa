package repository

import "github.com/malarguetech/taller-api/internal/domain/entity"

// PartRepository define el puerto de persistencia para Part (DIP).
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	GetBySKU(sku string) (*entity.Part, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción; serializa débitos concurrentes.
	GetForUpdate(id string) (*entity.Part, error)
	Update(part *entity.Part) error
	// UpdateQuantity persiste únicamente la columna de stock, para no pisar
	// ediciones concurrentes de otros campos del repuesto.
	UpdateQuantity(id string, quantity int64) error
	List(onlyActive bool, limit, offset int) ([]*entity.Part, error)
	ListLowStock(limit int) ([]*entity.Part, error)
	// Delete retorna domain.ErrReferenced si el repuesto está referenciado
	// por líneas de orden o movimientos de stock.
	Delete(id string) error
}
