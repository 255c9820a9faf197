// Package catalog expone las lecturas del catálogo del tenant que consume
// el POS: productos, clientes, sucursales, roles y existencias puntuales.
package catalog

import (
	"fmt"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

// CatalogUseCase listados de solo lectura acotados al tenant de la sesión.
type CatalogUseCase struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	locations repository.LocationRepository
	roles     repository.RoleRepository
	inventory repository.InventoryRepository
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	locations repository.LocationRepository,
	roles repository.RoleRepository,
	inventory repository.InventoryRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:  products,
		customers: customers,
		locations: locations,
		roles:     roles,
		inventory: inventory,
	}
}

// Products lista los productos del tenant, paginados. Un catálogo vacío
// devuelve una lista vacía, nunca nil ni error.
func (uc *CatalogUseCase) Products(tenantID string, page dto.PageRequest) ([]dto.ProductSummary, error) {
	page.DefaultPage()
	products, err := uc.products.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductSummary{
			ID: p.ID, Name: p.Name, SKU: p.SKU, ImageURL: p.ImageURL,
			SellingPrice: p.SellingPrice, TaxRate: p.TaxRate, Active: p.Active,
		})
	}
	return out, nil
}

// Customers lista los clientes del tenant, paginados.
func (uc *CatalogUseCase) Customers(tenantID string, page dto.PageRequest) ([]dto.CustomerSummary, error) {
	page.DefaultPage()
	customers, err := uc.customers.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerSummary{
			ID: c.ID, FirstName: c.FirstName, LastName: c.LastName,
			Email: c.Email, Phone: c.Phone, Active: c.Active,
		})
	}
	return out, nil
}

// Locations lista las sucursales del tenant, la principal primero.
func (uc *CatalogUseCase) Locations(tenantID string) ([]dto.LocationSummary, error) {
	locations, err := uc.locations.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar sucursales: %w", err)
	}
	out := make([]dto.LocationSummary, 0, len(locations))
	for _, l := range locations {
		out = append(out, dto.LocationSummary{
			ID: l.ID, Name: l.Name, Address: l.Address,
			IsMain: l.IsMain, Active: l.Active,
		})
	}
	return out, nil
}

// Roles lista los roles del tenant con sus permisos.
func (uc *CatalogUseCase) Roles(tenantID string) ([]dto.RoleSummary, error) {
	roles, err := uc.roles.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	out := make([]dto.RoleSummary, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleSummary{ID: r.ID, Name: r.Name, Permissions: r.Permissions})
	}
	return out, nil
}

// Stock devuelve las existencias de un producto en una sucursal, o
// (nil, nil) si no hay fila de inventario.
func (uc *CatalogUseCase) Stock(locationID, productID string) (*dto.StockResponse, error) {
	item, err := uc.inventory.GetByLocationAndProduct(locationID, productID)
	if err != nil {
		return nil, fmt.Errorf("consultar stock: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	return &dto.StockResponse{
		LocationID:  item.LocationID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
	}, nil
}
