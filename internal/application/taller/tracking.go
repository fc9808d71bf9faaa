package taller

import (
	"context"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
)

// Track resuelve la vista pública de seguimiento por token: estado de la
// orden, nombre del cliente, descripción del equipo y líneas. Token
// desconocido devuelve ErrNotFound; no expone datos de contacto ni precios
// internos más allá de los capturados en las líneas.
func (uc *OrderUseCase) Track(ctx context.Context, token string) (*dto.TrackingResponse, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orderRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	device, err := uc.deviceRepo.GetByID(order.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(device.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.TrackingResponse{
		OrderID:           order.ID,
		Status:            order.Status,
		StatusLabel:       entity.StatusLabel(order.Status),
		CustomerName:      customer.Name,
		DeviceDescription: device.Description(),
		UpdatedAt:         order.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, uc.toItemResponse(it))
	}
	return resp, nil
}
