package entity

import "time"

// Monedas soportadas en la configuración del tenant.
var SupportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"JPY": true,
	"CAD": true,
	"AUD": true,
	"MXN": true,
}

// TenantAddress dirección fiscal dentro del blob de settings.
type TenantAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// TenantSettings blob de configuración del tenant (columna JSONB).
type TenantSettings struct {
	TaxID          string        `json:"taxId"`
	DefaultTaxRate string        `json:"defaultTaxRate"`
	Currency       string        `json:"currency"`
	Address        TenantAddress `json:"address"`
}

// Tenant representa un negocio cliente del SaaS; raíz del aislamiento de datos.
// Invariante: Slug es único a nivel global (constraint UNIQUE en la tabla).
type Tenant struct {
	ID                 string
	Name               string
	Slug               string
	Settings           TenantSettings
	Active             bool
	SubscriptionStatus string // trial, active, past_due, canceled
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
