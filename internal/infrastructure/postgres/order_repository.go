package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, device_id, technician_id, reported_problem, diagnosis, estimated_price, status, stock_deducted, tracking_token, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.RepairOrder, error) {
	var o entity.RepairOrder
	err := row.Scan(
		&o.ID, &o.DeviceID, &o.TechnicianID, &o.ReportedProblem, &o.Diagnosis,
		&o.EstimatedPrice, &o.Status, &o.StockDeducted, &o.TrackingToken,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una nueva orden de reparación.
func (r *OrderRepo) Create(order *entity.RepairOrder) error {
	query := `
		INSERT INTO repair_orders (id, device_id, technician_id, reported_problem, diagnosis, estimated_price, status, stock_deducted, tracking_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.DeviceID, order.TechnicianID, order.ReportedProblem,
		order.Diagnosis, order.EstimatedPrice, order.Status, order.StockDeducted,
		order.TrackingToken, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert repair order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.RepairOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM repair_orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair order: %w", err)
	}
	return o, nil
}

// GetByToken obtiene una orden por su token de seguimiento (consulta pública).
func (r *OrderRepo) GetByToken(token string) (*entity.RepairOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM repair_orders WHERE tracking_token = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair order by token: %w", err)
	}
	return o, nil
}

// GetForUpdate obtiene una orden bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción; serializa transiciones concurrentes.
func (r *OrderRepo) GetForUpdate(id string) (*entity.RepairOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM repair_orders WHERE id = $1 FOR UPDATE`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair order for update: %w", err)
	}
	return o, nil
}

// List lista órdenes con paginación, de la más reciente a la más antigua.
func (r *OrderRepo) List(limit, offset int) ([]*entity.RepairOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM repair_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list repair orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.RepairOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan repair order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Update actualiza una orden. No toca stock_deducted (ver SetStockDeducted) ni el token.
func (r *OrderRepo) Update(order *entity.RepairOrder) error {
	query := `
		UPDATE repair_orders SET technician_id = $2, reported_problem = $3, diagnosis = $4, estimated_price = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TechnicianID, order.ReportedProblem, order.Diagnosis,
		order.EstimatedPrice, order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repair order: %w", err)
	}
	return nil
}

// SetStockDeducted marca el flag stock_deducted, sin pisar otras columnas.
func (r *OrderRepo) SetStockDeducted(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE repair_orders SET stock_deducted = true, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("set stock deducted: %w", err)
	}
	return nil
}

// Delete elimina una orden y, en cascada, sus líneas. Los movimientos de stock
// generados no se tocan: el historial de inventario sobrevive a la orden.
func (r *OrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM repair_orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete repair order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus devuelve el total de órdenes por estado (para el tablero).
func (r *OrderRepo) CountByStatus() ([]repository.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM repair_orders GROUP BY status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	var counts []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Total); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// SumEstimatedByStatus suma el precio estimado de las órdenes en los estados dados.
func (r *OrderRepo) SumEstimatedByStatus(statuses []string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(estimated_price), 0) FROM repair_orders WHERE status = ANY($1)`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, statuses).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum estimated by status: %w", err)
	}
	return total, nil
}
