package repository

import "github.com/malarguetech/taller-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete retorna domain.ErrReferenced si el cliente tiene equipos con
	// órdenes asociadas (la protección llega por la FK de equipos→órdenes).
	Delete(id string) error
}
