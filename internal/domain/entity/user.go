package entity

import "time"

// User representa el perfil de un usuario. El ID lo emite el sistema de
// identidad externo en el registro; TenantID y RoleID quedan vacíos hasta
// que el usuario completa el onboarding (ver invariante de bootstrap:
// solo el update final del usuario lo convierte en "tenant-bound").
type User struct {
	ID           string
	TenantID     string // vacío = usuario sin tenant (pendiente de onboarding)
	RoleID       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Phone        string
	AvatarURL    string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasTenant indica si el usuario ya completó el onboarding.
func (u *User) HasTenant() bool {
	return u != nil && u.TenantID != ""
}
