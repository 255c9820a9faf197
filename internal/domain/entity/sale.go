package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completed"
	SaleStatusVoided    = "voided"
)

// Sale venta registrada desde el punto de venta.
type Sale struct {
	ID             string
	TenantID       string
	LocationID     string
	UserID         string
	CustomerID     string // vacío = venta de mostrador sin cliente
	SaleNumber     string
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  string // cash, card, transfer
	PaymentStatus  string // paid, pending
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem línea de una venta.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}
