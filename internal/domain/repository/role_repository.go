package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	ListByTenant(tenantID string) ([]*entity.Role, error)
}
