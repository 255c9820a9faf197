package dto

import "github.com/shopspring/decimal"

// ProductSummary producto en los listados del catálogo.
type ProductSummary struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	ImageURL     string          `json:"image_url,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Active       bool            `json:"active"`
}

// CustomerSummary cliente en los listados del catálogo.
type CustomerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active"`
}

// LocationSummary sucursal en los listados del catálogo.
type LocationSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	IsMain  bool   `json:"is_main"`
	Active  bool   `json:"active"`
}

// RoleSummary rol del tenant con sus permisos.
type RoleSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Permissions map[string]bool `json:"permissions"`
}

// StockResponse existencias de un producto en una sucursal.
type StockResponse struct {
	LocationID  string `json:"location_id"`
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
