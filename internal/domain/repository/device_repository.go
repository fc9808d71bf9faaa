package repository

import "github.com/malarguetech/taller-api/internal/domain/entity"

// DeviceRepository define el puerto de persistencia para Device.
type DeviceRepository interface {
	Create(device *entity.Device) error
	GetByID(id string) (*entity.Device, error)
	List(limit, offset int) ([]*entity.Device, error)
	ListByCustomer(customerID string) ([]*entity.Device, error)
	Update(device *entity.Device) error
	// Delete retorna domain.ErrReferenced si el equipo tiene órdenes asociadas.
	Delete(id string) error
}
