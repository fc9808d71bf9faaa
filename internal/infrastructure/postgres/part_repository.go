package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partColumns = `id, sku, name, description, quantity, min_quantity, unit_price, active, created_at, updated_at`

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Quantity, &p.MinQuantity,
		&p.UnitPrice, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo repuesto.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, sku, name, description, quantity, min_quantity, unit_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.SKU, part.Name, part.Description, part.Quantity,
		part.MinQuantity, part.UnitPrice, part.Active, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un repuesto por su código único.
func (r *PartRepo) GetBySKU(sku string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE sku = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part by sku: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene un repuesto bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción; serializa débitos concurrentes.
func (r *PartRepo) GetForUpdate(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1 FOR UPDATE`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part for update: %w", err)
	}
	return p, nil
}

// Update actualiza los datos de un repuesto. No toca Quantity (se maneja vía movimientos).
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET sku = $2, name = $3, description = $4, min_quantity = $5, unit_price = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.SKU, part.Name, part.Description, part.MinQuantity,
		part.UnitPrice, part.Active, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la columna de stock (usada por el libro de inventario).
func (r *PartRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update part quantity: %w", err)
	}
	return nil
}

// List lista repuestos con paginación. Con onlyActive filtra los dados de baja.
func (r *PartRepo) List(onlyActive bool, limit, offset int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts`
	if onlyActive {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var parts []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// ListLowStock lista repuestos activos en o por debajo de su umbral mínimo.
func (r *PartRepo) ListLowStock(limit int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts
		WHERE active = true AND quantity <= min_quantity
		ORDER BY quantity ASC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock parts: %w", err)
	}
	defer rows.Close()

	var parts []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// Delete elimina un repuesto. Si está referenciado por líneas de orden o
// movimientos de stock, retorna domain.ErrReferenced.
func (r *PartRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
