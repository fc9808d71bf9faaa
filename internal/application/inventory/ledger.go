package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// StockLedger es el libro de inventario: descuenta y repone stock de
// repuestos de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE)
// y un movimiento de auditoría por cada cambio de cantidad.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger construye el libro de inventario.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

// DebitInTx descuenta stock usando repositorios atados a la transacción del
// caller (misma tx que el cambio de estado de la orden, cuando aplica).
//
// Bloquea la fila del repuesto, verifica stock suficiente, persiste solo la
// columna de cantidad y registra el movimiento SALIDA. Cualquier error deja
// la transacción del caller lista para rollback: nunca queda un cambio de
// cantidad sin su movimiento, ni viceversa.
func (l *StockLedger) DebitInTx(
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
	partID string,
	quantity int64,
	reason string,
) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	part, err := partRepo.GetForUpdate(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	if quantity > part.Quantity {
		return fmt.Errorf("repuesto %s: disponible %d, requerido %d: %w",
			part.SKU, part.Quantity, quantity, domain.ErrInsufficientStock)
	}
	if err := partRepo.UpdateQuantity(partID, part.Quantity-quantity); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		PartID:    partID,
		Type:      entity.MovementSalida,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	return movRepo.Create(mov)
}

// CreditInTx repone stock (inverso simétrico de DebitInTx): suma cantidad y
// registra el movimiento ENTRADA en la misma transacción.
func (l *StockLedger) CreditInTx(
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
	partID string,
	quantity int64,
	reason string,
) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	part, err := partRepo.GetForUpdate(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	if err := partRepo.UpdateQuantity(partID, part.Quantity+quantity); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		PartID:    partID,
		Type:      entity.MovementEntrada,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	return movRepo.Create(mov)
}

// RegisterMovement registra un movimiento manual (reposición de stock,
// rotura, ajuste) en su propia transacción. Es el camino de los endpoints
// de inventario; el descuento automático de órdenes usa DebitInTx.
func (l *StockLedger) RegisterMovement(ctx context.Context, partID, movType string, quantity int64, reason string) error {
	if partID == "" || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	switch movType {
	case entity.MovementEntrada, entity.MovementSalida:
	default:
		return domain.ErrInvalidInput
	}
	if reason == "" {
		reason = "Ajuste manual"
	}

	return l.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if movType == entity.MovementEntrada {
			return l.CreditInTx(partRepo, movRepo, partID, quantity, reason)
		}
		return l.DebitInTx(partRepo, movRepo, partID, quantity, reason)
	})
}
