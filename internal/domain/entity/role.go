package entity

import "time"

// AdminRoleName nombre del rol creado durante el bootstrap.
const AdminRoleName = "Admin"

// AdminPermissions mapa de permisos completo que recibe el rol Admin
// del bootstrap. Las seis llaves deben existir y estar en true.
func AdminPermissions() map[string]bool {
	return map[string]bool{
		"admin":     true,
		"pos":       true,
		"inventory": true,
		"customers": true,
		"reports":   true,
		"settings":  true,
	}
}

// Role conjunto de permisos con nombre, siempre scoped a un tenant.
// Invariante: Role.TenantID == Tenant.ID para todo rol referenciado por
// usuarios de ese tenant.
type Role struct {
	ID          string
	TenantID    string
	Name        string
	Permissions map[string]bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
