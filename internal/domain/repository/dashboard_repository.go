package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecentSaleResult venta reciente con los joins que necesita el dashboard
// (nombre del cliente y de la sucursal).
type RecentSaleResult struct {
	SaleID            string
	SaleNumber        string
	TotalAmount       decimal.Decimal
	Status            string
	CreatedAt         time.Time
	CustomerFirstName string // vacío si la venta no tiene cliente
	CustomerLastName  string
	LocationName      string
}

// LowStockResult fila de inventario bajo el umbral, con datos del producto.
type LowStockResult struct {
	InventoryID string
	ProductID   string
	ProductName string
	SKU         string
	ImageURL    string
	Quantity    int
	MinQuantity int
}

// DashboardRepository consultas de solo lectura para el resumen del
// dashboard. Ambas son best-effort: sin filas devuelven slice vacío,
// nunca error.
type DashboardRepository interface {
	GetRecentSales(ctx context.Context, tenantID string, limit int) ([]RecentSaleResult, error)
	GetLowStock(ctx context.Context, locationID string, threshold, limit int) ([]LowStockResult, error)
}
