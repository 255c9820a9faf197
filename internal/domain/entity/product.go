package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto vendible de un tenant.
type Product struct {
	ID           string
	TenantID     string
	Name         string
	SKU          string
	ImageURL     string
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	TaxRate      decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InventoryItem existencias de un producto en una sucursal.
type InventoryItem struct {
	ID          string
	LocationID  string
	ProductID   string
	Quantity    int
	MinQuantity int
	MaxQuantity int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
