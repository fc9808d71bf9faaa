package taller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
	"github.com/malarguetech/taller-api/pkg/logger"
)

// OrderUseCase orquesta el ciclo de vida de las órdenes de reparación:
// alta con líneas de repuestos, edición, transiciones de estado con el
// descuento automático de stock, y la vista pública de seguimiento.
type OrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	itemRepo     repository.OrderPartRepository
	partRepo     repository.PartRepository
	deviceRepo   repository.DeviceRepository
	customerRepo repository.CustomerRepository
	ledger       Ledger
	notifier     Notifier
	site         SiteURLs
	log          *logger.Logger
}

// NewOrderUseCase construye el caso de uso de órdenes.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderPartRepository,
	partRepo repository.PartRepository,
	deviceRepo repository.DeviceRepository,
	customerRepo repository.CustomerRepository,
	ledger Ledger,
	notifier Notifier,
	site SiteURLs,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		partRepo:     partRepo,
		deviceRepo:   deviceRepo,
		customerRepo: customerRepo,
		ledger:       ledger,
		notifier:     notifier,
		site:         site,
		log:          log,
	}
}

// CreateOrder crea una orden nueva en estado INGRESADO con sus líneas de
// repuestos. El token de seguimiento se sortea una sola vez (UUID v4, 128
// bits aleatorios) y nunca se regenera. Las líneas pasan la validación
// blanda de stock; el control definitivo ocurre al descontar (REPARADO).
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.DeviceID == "" || in.ReportedProblem == "" {
		return nil, domain.ErrInvalidInput
	}
	device, err := uc.deviceRepo.GetByID(in.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}

	// Validación de líneas fuera de la tx (solo lectura)
	items := make([]*entity.OrderPart, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := uc.buildItem("", it)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	order := &entity.RepairOrder{
		ID:              uuid.New().String(),
		DeviceID:        in.DeviceID,
		TechnicianID:    in.TechnicianID,
		ReportedProblem: in.ReportedProblem,
		Diagnosis:       in.Diagnosis,
		EstimatedPrice:  in.EstimatedPrice,
		Status:          entity.StatusIngresado,
		StockDeducted:   false,
		TrackingToken:   uuid.New().String(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderPartRepository,
		_ repository.PartRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := itemRepo.Create(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, items), nil
}

// buildItem valida una línea y captura el precio unitario vigente del
// repuesto cuando el request no trae uno. La validación de stock acá es
// blanda: avisa temprano, pero el stock puede cambiar antes del descuento.
func (uc *OrderUseCase) buildItem(orderID string, in dto.OrderItemInput) (*entity.OrderPart, error) {
	if in.PartID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.partRepo.GetByID(in.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil || !part.Active {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > part.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	price := part.UnitPrice
	if in.UnitPrice != nil && !in.UnitPrice.IsZero() {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		price = *in.UnitPrice
	}
	return &entity.OrderPart{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		PartID:    in.PartID,
		Quantity:  in.Quantity,
		UnitPrice: price,
	}, nil
}

// GetOrder devuelve una orden con sus líneas.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, items), nil
}

// ListOrders lista órdenes paginadas (sin líneas).
func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *uc.toOrderResponse(o, nil))
	}
	return out, nil
}

// DeleteOrder elimina la orden y, por cascada, sus líneas. Los movimientos
// de stock ya registrados quedan: son auditoría inmutable.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

// ToResponse arma el DTO de una orden con sus líneas (para respuestas de
// transición, donde el caller ya tiene la entidad cargada).
func (uc *OrderUseCase) ToResponse(order *entity.RepairOrder, items []*entity.OrderPart) *dto.OrderResponse {
	return uc.toOrderResponse(order, items)
}

func (uc *OrderUseCase) toOrderResponse(order *entity.RepairOrder, items []*entity.OrderPart) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              order.ID,
		DeviceID:        order.DeviceID,
		TechnicianID:    order.TechnicianID,
		ReportedProblem: order.ReportedProblem,
		Diagnosis:       order.Diagnosis,
		EstimatedPrice:  order.EstimatedPrice,
		Status:          order.Status,
		StatusLabel:     entity.StatusLabel(order.Status),
		StockDeducted:   order.StockDeducted,
		TrackingURL:     uc.site.TrackingURL(order.TrackingToken),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, uc.toItemResponse(it))
	}
	return resp
}

func (uc *OrderUseCase) toItemResponse(item *entity.OrderPart) dto.OrderItemResponse {
	out := dto.OrderItemResponse{
		ID:        item.ID,
		PartID:    item.PartID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal(),
	}
	// Enriquecer con nombre y SKU si el repuesto sigue existiendo
	if part, err := uc.partRepo.GetByID(item.PartID); err == nil && part != nil {
		out.PartName = part.Name
		out.SKU = part.SKU
	}
	return out
}
