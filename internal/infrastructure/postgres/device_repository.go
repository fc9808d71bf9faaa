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

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implementación del puerto DeviceRepository sobre PostgreSQL.
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

const deviceColumns = `id, customer_id, type, brand, model, serial_number, intake_notes, created_at`

func scanDevice(row pgx.Row) (*entity.Device, error) {
	var d entity.Device
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.Type, &d.Brand, &d.Model,
		&d.SerialNumber, &d.IntakeNotes, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste un nuevo equipo.
func (r *DeviceRepo) Create(device *entity.Device) error {
	query := `
		INSERT INTO devices (id, customer_id, type, brand, model, serial_number, intake_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		device.ID, device.CustomerID, device.Type, device.Brand, device.Model,
		device.SerialNumber, device.IntakeNotes, device.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *DeviceRepo) GetByID(id string) (*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`
	d, err := scanDevice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device: %w", err)
	}
	return d, nil
}

// List lista equipos con paginación, del más reciente al más antiguo.
func (r *DeviceRepo) List(limit, offset int) ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	var devices []*entity.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// ListByCustomer lista los equipos de un cliente.
func (r *DeviceRepo) ListByCustomer(customerID string) ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list devices by customer: %w", err)
	}
	defer rows.Close()

	var devices []*entity.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// Update actualiza los datos de un equipo.
func (r *DeviceRepo) Update(device *entity.Device) error {
	query := `
		UPDATE devices SET type = $2, brand = $3, model = $4, serial_number = $5, intake_notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		device.ID, device.Type, device.Brand, device.Model,
		device.SerialNumber, device.IntakeNotes,
	)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// Delete elimina un equipo. Si tiene órdenes asociadas retorna domain.ErrReferenced.
func (r *DeviceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete device: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
