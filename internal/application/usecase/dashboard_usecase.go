package usecase

import (
	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// lowStockPanelSize cantidad máxima de repuestos en el panel de stock bajo.
const lowStockPanelSize = 8

// DashboardUseCase arma las métricas del tablero del taller: órdenes por
// estado, repuestos en stock bajo y facturación estimada (órdenes REPARADO
// y ENTREGADO).
type DashboardUseCase struct {
	orderRepo repository.OrderRepository
	partRepo  repository.PartRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orderRepo repository.OrderRepository, partRepo repository.PartRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, partRepo: partRepo}
}

// Build consulta y arma el tablero.
func (uc *DashboardUseCase) Build() (*dto.DashboardResponse, error) {
	counts, err := uc.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Total
	}

	lowStock, err := uc.partRepo.ListLowStock(lowStockPanelSize)
	if err != nil {
		return nil, err
	}
	lowStockOut := make([]dto.PartResponse, 0, len(lowStock))
	for _, p := range lowStock {
		lowStockOut = append(lowStockOut, *toPartResponse(p))
	}

	billing, err := uc.orderRepo.SumEstimatedByStatus([]string{entity.StatusReparado, entity.StatusEntregado})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		OrdersByStatus:   byStatus,
		LowStockParts:    lowStockOut,
		EstimatedBilling: billing,
	}, nil
}
