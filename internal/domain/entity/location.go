package entity

import "time"

// MainLocationName nombre de la sucursal creada durante el bootstrap.
const MainLocationName = "Main Store"

// Location sucursal física de un tenant. La primera creada en el
// bootstrap queda marcada IsMain=true.
type Location struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Phone     string
	Email     string
	IsMain    bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserLocation vincula un usuario a una sucursal. Invariante: cada
// usuario tiene a lo sumo una fila con IsDefault=true.
type UserLocation struct {
	UserID     string
	LocationID string
	IsDefault  bool
	CreatedAt  time.Time
}
