package taller

import (
	"context"
	"fmt"
	"time"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// TransitionResult es el resultado estructurado de cualquier guardado de
// orden: estado previo y nuevo, si esta operación descontó stock y si se
// entregó una notificación. Reemplaza los efectos implícitos por un
// manejador explícito invocado en el mismo flujo que persiste el cambio.
type TransitionResult struct {
	Order            *entity.RepairOrder
	Items            []*entity.OrderPart
	PreviousStatus   string
	StatusChanged    bool
	StockDeducted    bool
	NotificationSent bool
}

// ChangeStatus actualiza el estado de una orden (más diagnóstico, precio
// estimado y técnico, como el formulario de estado del taller) pasando por
// el manejador de transiciones.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, orderID string, in dto.ChangeStatusRequest) (*TransitionResult, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyTransition(ctx, orderID, func(order *entity.RepairOrder) error {
		order.Status = in.Status
		if in.Diagnosis != nil {
			order.Diagnosis = *in.Diagnosis
		}
		if in.EstimatedPrice != nil {
			order.EstimatedPrice = *in.EstimatedPrice
		}
		if in.TechnicianID != nil {
			order.TechnicianID = in.TechnicianID
		}
		return nil
	})
}

// UpdateOrder edita los campos de la orden. Si el request trae Status, la
// edición es también una transición: todos los caminos de guardado pasan por
// el mismo manejador, no hay hooks implícitos.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, orderID string, in dto.UpdateOrderRequest) (*TransitionResult, error) {
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyTransition(ctx, orderID, func(order *entity.RepairOrder) error {
		if in.TechnicianID != nil {
			order.TechnicianID = in.TechnicianID
		}
		if in.ReportedProblem != nil {
			order.ReportedProblem = *in.ReportedProblem
		}
		if in.Diagnosis != nil {
			order.Diagnosis = *in.Diagnosis
		}
		if in.EstimatedPrice != nil {
			order.EstimatedPrice = *in.EstimatedPrice
		}
		if in.Status != nil {
			order.Status = *in.Status
		}
		return nil
	})
}

// applyTransition es el manejador explícito de transiciones. En UNA
// transacción: bloquea la fila de la orden, lee el estado almacenado (ese es
// el "estado anterior", no un snapshot en memoria), aplica la mutación,
// persiste la orden y, si el nuevo estado es REPARADO con stock aún sin
// descontar, debita cada línea y marca stock_deducted.
//
// El descuento es atómico con el cambio de estado: si algún débito falla con
// ErrInsufficientStock, todo se revierte (estado incluido) y el error sube al
// caller. stock_deducted en true hace del descuento un no-op, sin importar
// cuántas veces se re-guarde la orden en REPARADO.
//
// La notificación corre después del commit: su falla jamás revierte ni
// bloquea la transición.
func (uc *OrderUseCase) applyTransition(ctx context.Context, orderID string, mutate func(*entity.RepairOrder) error) (*TransitionResult, error) {
	res := &TransitionResult{}

	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderPartRepository,
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		previous := order.Status

		if err := mutate(order); err != nil {
			return err
		}
		if order.Status != previous && entity.TerminalStatus(previous) {
			return domain.ErrConflict
		}

		order.UpdatedAt = time.Now()
		if err := orderRepo.Update(order); err != nil {
			return err
		}

		res.PreviousStatus = previous
		res.StatusChanged = order.Status != previous

		if order.Status == entity.StatusReparado && !order.StockDeducted {
			items, err := itemRepo.ListByOrder(order.ID)
			if err != nil {
				return err
			}
			reason := fmt.Sprintf("Orden de reparación #%s", order.ID)
			for _, item := range items {
				if err := uc.ledger.DebitInTx(partRepo, movRepo, item.PartID, item.Quantity, reason); err != nil {
					return err
				}
			}
			if err := orderRepo.SetStockDeducted(order.ID); err != nil {
				return err
			}
			order.StockDeducted = true
			res.StockDeducted = true
			res.Items = items
		}

		res.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.StatusChanged {
		res.NotificationSent = uc.notifyStatusChange(ctx, res.Order)
	}
	return res, nil
}

// notifyStatusChange compone y entrega la notificación de cambio de estado.
// Best-effort: sin email de cliente no hay envío; un error de entrega se
// registra y se descarta.
func (uc *OrderUseCase) notifyStatusChange(ctx context.Context, order *entity.RepairOrder) bool {
	device, err := uc.deviceRepo.GetByID(order.DeviceID)
	if err != nil || device == nil {
		uc.log.Warn().Str("order_id", order.ID).Msg("notificación omitida: equipo no encontrado")
		return false
	}
	customer, err := uc.customerRepo.GetByID(device.CustomerID)
	if err != nil || customer == nil {
		uc.log.Warn().Str("order_id", order.ID).Msg("notificación omitida: cliente no encontrado")
		return false
	}
	if customer.Email == "" {
		return false
	}

	msg := StatusNotification{
		RecipientEmail:    customer.Email,
		CustomerName:      customer.Name,
		OrderID:           order.ID,
		DeviceDescription: device.Description(),
		StatusLabel:       entity.StatusLabel(order.Status),
		TrackingURL:       uc.site.TrackingURL(order.TrackingToken),
	}
	if err := uc.notifier.StatusChanged(ctx, msg); err != nil {
		uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("fallo al enviar notificación de estado")
		return false
	}
	return true
}
