package dto

// BusinessProfile entrada del onboarding: los datos del negocio con los que
// se provisiona el tenant, su rol Admin y su sucursal principal.
type BusinessProfile struct {
	BusinessName string `json:"business_name" validate:"required,min=2"`
	BusinessSlug string `json:"business_slug" validate:"required,min=2"`
	Address      string `json:"address" validate:"required,min=5"`
	City         string `json:"city" validate:"required,min=2"`
	PostalCode   string `json:"postal_code" validate:"required,min=3"`
	Country      string `json:"country" validate:"required,min=2"`
	Phone        string `json:"phone" validate:"required,min=5"`
	Email        string `json:"email" validate:"required,email"`
	TaxID        string `json:"tax_id" validate:"required,min=5"`
	TaxRate      string `json:"tax_rate" validate:"required,numeric"`
	Currency     string `json:"currency" validate:"required"`
}
