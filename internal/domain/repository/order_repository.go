package repository

import (
	"github.com/shopspring/decimal"

	"github.com/malarguetech/taller-api/internal/domain/entity"
)

// StatusCount total de órdenes por estado (para el tablero).
type StatusCount struct {
	Status string
	Total  int64
}

// OrderRepository define el puerto de persistencia para RepairOrder.
type OrderRepository interface {
	Create(order *entity.RepairOrder) error
	GetByID(id string) (*entity.RepairOrder, error)
	// GetByToken busca por token de seguimiento (consulta pública).
	GetByToken(token string) (*entity.RepairOrder, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE). El estado
	// leído aquí es el "estado anterior" contra el que se detectan cambios.
	GetForUpdate(id string) (*entity.RepairOrder, error)
	List(limit, offset int) ([]*entity.RepairOrder, error)
	Update(order *entity.RepairOrder) error
	// SetStockDeducted persiste únicamente el flag stock_deducted.
	SetStockDeducted(id string) error
	Delete(id string) error
	CountByStatus() ([]StatusCount, error)
	// SumEstimatedByStatus suma precio_estimado de las órdenes en los estados dados.
	SumEstimatedByStatus(statuses []string) (decimal.Decimal, error)
}
