package inventory

import (
	"context"

	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el cambio de
// cantidad y su movimiento de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
