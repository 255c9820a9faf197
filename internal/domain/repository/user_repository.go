package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID devuelve (nil, nil) cuando no hay fila: un usuario OAuth de primer
// ingreso puede no tener perfil todavía y eso no es un error (el guard lo
// manda a onboarding).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// LinkTenant fija tenant_id y role_id del usuario (paso final del bootstrap).
	LinkTenant(userID, tenantID, roleID string) error
}
