package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error)
}

// InventoryRepository existencias por sucursal.
type InventoryRepository interface {
	Upsert(item *entity.InventoryItem) error
	GetByLocationAndProduct(locationID, productID string) (*entity.InventoryItem, error)
	// Decrement descuenta qty unidades; la implementación debe fallar con
	// domain.ErrInsufficientStock si el saldo quedaría negativo.
	Decrement(locationID, productID string, qty int) error
}
