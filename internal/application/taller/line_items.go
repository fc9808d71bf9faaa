package taller

import (
	"context"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
)

// AddPart agrega una línea de repuesto a una orden existente. Requiere
// cantidad positiva y que no supere el stock disponible al momento del alta
// (chequeo blando; el control definitivo es el débito al pasar a REPARADO).
// No reserva stock.
func (uc *OrderUseCase) AddPart(ctx context.Context, orderID string, in dto.OrderItemInput) (*dto.OrderItemResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.buildItem(orderID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	resp := uc.toItemResponse(item)
	return &resp, nil
}

// RemovePart quita una línea de la orden. Sin efectos sobre el libro de
// inventario: nada se descontó todavía, así que nada hay que devolver.
func (uc *OrderUseCase) RemovePart(ctx context.Context, orderID, itemID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.OrderID != orderID {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(itemID)
}
