package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	ListByTenant(tenantID string) ([]*entity.Location, error)
}

// UserLocationRepository vincula usuarios con sucursales.
type UserLocationRepository interface {
	Assign(ul *entity.UserLocation) error
	// GetDefaultLocation devuelve la sucursal con is_default=true del usuario,
	// o (nil, nil) si no tiene ninguna asignada.
	GetDefaultLocation(userID string) (*entity.Location, error)
}
