package entity

import "time"

// Customer cliente final de un tenant (el comprador en el POS).
type Customer struct {
	ID        string
	TenantID  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
