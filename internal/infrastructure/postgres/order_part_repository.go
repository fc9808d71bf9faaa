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

var _ repository.OrderPartRepository = (*OrderPartRepo)(nil)

// OrderPartRepo implementación del puerto OrderPartRepository sobre PostgreSQL (usable con pool o tx).
type OrderPartRepo struct {
	q Querier
}

// NewOrderPartRepository construye el adaptador de persistencia para líneas de orden. Pasar pool o tx (Querier).
func NewOrderPartRepository(q Querier) *OrderPartRepo {
	return &OrderPartRepo{q: q}
}

// Create persiste una línea de orden.
func (r *OrderPartRepo) Create(item *entity.OrderPart) error {
	query := `
		INSERT INTO order_parts (id, order_id, part_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.PartID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order part: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *OrderPartRepo) GetByID(id string) (*entity.OrderPart, error) {
	query := `SELECT id, order_id, part_id, quantity, unit_price FROM order_parts WHERE id = $1`
	var op entity.OrderPart
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.OrderID, &op.PartID, &op.Quantity, &op.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order part: %w", err)
	}
	return &op, nil
}

// ListByOrder lista las líneas de una orden.
func (r *OrderPartRepo) ListByOrder(orderID string) ([]*entity.OrderPart, error) {
	query := `SELECT id, order_id, part_id, quantity, unit_price FROM order_parts WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order parts: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderPart
	for rows.Next() {
		var op entity.OrderPart
		if err := rows.Scan(&op.ID, &op.OrderID, &op.PartID, &op.Quantity, &op.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order part: %w", err)
		}
		items = append(items, &op)
	}
	return items, rows.Err()
}

// Delete elimina una línea de orden.
func (r *OrderPartRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM order_parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
