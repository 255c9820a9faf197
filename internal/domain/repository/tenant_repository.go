package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure.
type TenantRepository interface {
	// Create persiste el tenant; una violación del constraint único del slug
	// se reporta como domain.ErrSlugTaken (respaldo de la carrera
	// check-then-act de dos bootstraps simultáneos con el mismo slug).
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	// GetBySlug devuelve (nil, nil) si el slug está libre.
	GetBySlug(slug string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
}
