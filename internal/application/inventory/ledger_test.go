package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malarguetech/taller-api/internal/application/inventory"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + restore)
// ──────────────────────────────────────────────────────────────────────────────

type memPartRepo struct {
	parts map[string]*entity.Part
}

func newMemPartRepo(parts ...*entity.Part) *memPartRepo {
	m := &memPartRepo{parts: make(map[string]*entity.Part)}
	for _, p := range parts {
		cp := *p
		m.parts[p.ID] = &cp
	}
	return m
}

func (r *memPartRepo) Create(p *entity.Part) error {
	cp := *p
	r.parts[p.ID] = &cp
	return nil
}

func (r *memPartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetBySKU(sku string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) GetForUpdate(id string) (*entity.Part, error) {
	return r.GetByID(id)
}

func (r *memPartRepo) Update(p *entity.Part) error {
	cp := *p
	r.parts[p.ID] = &cp
	return nil
}

func (r *memPartRepo) UpdateQuantity(id string, quantity int64) error {
	p, ok := r.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *memPartRepo) List(onlyActive bool, limit, offset int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if onlyActive && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPartRepo) ListLowStock(limit int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.Active && p.LowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPartRepo) Delete(id string) error {
	delete(r.parts, id)
	return nil
}

func (r *memPartRepo) snapshot() map[string]*entity.Part {
	s := make(map[string]*entity.Part, len(r.parts))
	for k, v := range r.parts {
		cp := *v
		s[k] = &cp
	}
	return s
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByPart(partID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.PartID == partID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

// memTxRunner simula la transacción: toma un snapshot antes de fn y lo
// restaura si fn falla, igual que un ROLLBACK.
type memTxRunner struct {
	partRepo *memPartRepo
	movRepo  *memMovementRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	parts := tx.partRepo.snapshot()
	movs := len(tx.movRepo.movements)
	if err := fn(tx.partRepo, tx.movRepo); err != nil {
		tx.partRepo.parts = parts
		tx.movRepo.movements = tx.movRepo.movements[:movs]
		return err
	}
	return nil
}

func testPart(id string, qty int64) *entity.Part {
	return &entity.Part{
		ID:        id,
		SKU:       "SKU-" + id,
		Name:      "Repuesto " + id,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString("1000"),
		Active:    true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DebitInTx / CreditInTx
// ──────────────────────────────────────────────────────────────────────────────

func TestDebitInTx_DescuentaYRegistraMovimiento(t *testing.T) {
	partRepo := newMemPartRepo(testPart("p1", 3))
	movRepo := &memMovementRepo{}
	ledger := inventory.NewStockLedger(nil)

	err := ledger.DebitInTx(partRepo, movRepo, "p1", 2, "Orden de reparación #o1")
	require.NoError(t, err)

	p, _ := partRepo.GetByID("p1")
	assert.Equal(t, int64(1), p.Quantity, "3 - 2 = 1")

	require.Len(t, movRepo.movements, 1, "exactamente un movimiento por débito")
	mov := movRepo.movements[0]
	assert.Equal(t, entity.MovementSalida, mov.Type)
	assert.Equal(t, int64(2), mov.Quantity)
	assert.Equal(t, "Orden de reparación #o1", mov.Reason)
}

func TestDebitInTx_StockInsuficiente(t *testing.T) {
	partRepo := newMemPartRepo(testPart("p1", 1))
	movRepo := &memMovementRepo{}
	ledger := inventory.NewStockLedger(nil)

	err := ledger.DebitInTx(partRepo, movRepo, "p1", 2, "x")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := partRepo.GetByID("p1")
	assert.Equal(t, int64(1), p.Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, movRepo.movements, "sin movimiento cuando el débito falla")
}

func TestDebitInTx_RepuestoInexistente(t *testing.T) {
	ledger := inventory.NewStockLedger(nil)
	err := ledger.DebitInTx(newMemPartRepo(), &memMovementRepo{}, "nope", 1, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebitInTx_CantidadInvalida(t *testing.T) {
	ledger := inventory.NewStockLedger(nil)
	err := ledger.DebitInTx(newMemPartRepo(testPart("p1", 5)), &memMovementRepo{}, "p1", 0, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreditInTx_SumaYRegistraEntrada(t *testing.T) {
	partRepo := newMemPartRepo(testPart("p1", 3))
	movRepo := &memMovementRepo{}
	ledger := inventory.NewStockLedger(nil)

	err := ledger.CreditInTx(partRepo, movRepo, "p1", 5, "Reposición proveedor")
	require.NoError(t, err)

	p, _ := partRepo.GetByID("p1")
	assert.Equal(t, int64(8), p.Quantity)
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementEntrada, movRepo.movements[0].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement (transacción propia)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Validaciones(t *testing.T) {
	partRepo := newMemPartRepo(testPart("p1", 5))
	movRepo := &memMovementRepo{}
	ledger := inventory.NewStockLedger(&memTxRunner{partRepo: partRepo, movRepo: movRepo})
	ctx := context.Background()

	assert.ErrorIs(t, ledger.RegisterMovement(ctx, "", entity.MovementEntrada, 1, ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, ledger.RegisterMovement(ctx, "p1", "TRASLADO", 1, ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, ledger.RegisterMovement(ctx, "p1", entity.MovementSalida, 0, ""), domain.ErrInvalidInput)
	assert.Empty(t, movRepo.movements)
}

func TestRegisterMovement_EntradaConMotivoPorDefecto(t *testing.T) {
	partRepo := newMemPartRepo(testPart("p1", 2))
	movRepo := &memMovementRepo{}
	ledger := inventory.NewStockLedger(&memTxRunner{partRepo: partRepo, movRepo: movRepo})

	err := ledger.RegisterMovement(context.Background(), "p1", entity.MovementEntrada, 3, "")
	require.NoError(t, err)

	p, _ := partRepo.GetByID("p1")
	assert.Equal(t, int64(5), p.Quantity)
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, "Ajuste manual", movRepo.movements[0].Reason)
}

func TestRegisterMovement_SalidaInsuficienteRevierte(t *testing.T) {
	partRepo := newMemPartRepo(testPart("p1", 1))
	movRepo := &memMovementRepo{}
	ledger := inventory.NewStockLedger(&memTxRunner{partRepo: partRepo, movRepo: movRepo})

	err := ledger.RegisterMovement(context.Background(), "p1", entity.MovementSalida, 4, "rotura")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := partRepo.GetByID("p1")
	assert.Equal(t, int64(1), p.Quantity, "rollback: la cantidad no cambia")
	assert.Empty(t, movRepo.movements, "rollback: sin movimiento")
}
