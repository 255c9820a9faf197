package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta desde el POS.
type CreateSaleRequest struct {
	LocationID    string          `json:"location_id" validate:"required,uuid"`
	CustomerID    string          `json:"customer_id" validate:"omitempty,uuid"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash card transfer"`
	Items         []SaleItemInput `json:"items" validate:"required,min=1,dive"`
}

// SaleItemInput línea de la venta.
type SaleItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SaleResponse salida de una venta creada.
type SaleResponse struct {
	ID            string           `json:"id"`
	SaleNumber    string           `json:"sale_number"`
	LocationID    string           `json:"location_id"`
	CustomerID    string           `json:"customer_id,omitempty"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	TaxAmount     decimal.Decimal  `json:"tax_amount"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	PaymentMethod string           `json:"payment_method"`
	Status        string           `json:"status"`
	Items         []SaleItemDetail `json:"items"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SaleItemDetail línea de venta en la respuesta.
type SaleItemDetail struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
