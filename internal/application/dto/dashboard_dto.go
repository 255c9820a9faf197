package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview: ventas
// recientes del tenant y productos con stock bajo en la sucursal.
type DashboardOverviewDTO struct {
	LocationID    string          `json:"location_id,omitempty"`
	RecentSales   []RecentSaleDTO `json:"recent_sales"`
	LowStockItems []LowStockDTO   `json:"low_stock_items"`
}

// RecentSaleDTO venta reciente con el nombre del cliente y la sucursal.
type RecentSaleDTO struct {
	SaleID       string          `json:"sale_id"`
	SaleNumber   string          `json:"sale_number"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customer_name,omitempty"`
	LocationName string          `json:"location_name"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LowStockDTO producto bajo el umbral de stock de la sucursal.
type LowStockDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	ImageURL    string `json:"image_url,omitempty"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
