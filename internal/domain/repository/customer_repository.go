package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error)
}
