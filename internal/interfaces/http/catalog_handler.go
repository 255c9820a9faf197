package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pos-cloud/internal/application/catalog"
	"github.com/tu-usuario/pos-cloud/internal/application/dto"
)

// CatalogHandler listados del catálogo del tenant para el POS.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products godoc
// @Summary      Listar productos del tenant
// @Tags         catalog
// @Produce      json
// @Param        limit   query  int  false  "máximo 100, por defecto 20"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ProductSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	products, err := h.uc.Products(GetTenantID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// Customers godoc
// @Summary      Listar clientes del tenant
// @Tags         catalog
// @Produce      json
// @Param        limit   query  int  false  "máximo 100, por defecto 20"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.CustomerSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CatalogHandler) Customers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	customers, err := h.uc.Customers(GetTenantID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(customers)
}

// Locations godoc
// @Summary      Listar sucursales del tenant
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.LocationSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *CatalogHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.uc.Locations(GetTenantID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(locations)
}

// Roles godoc
// @Summary      Listar roles del tenant
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.RoleSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/roles [get]
func (h *CatalogHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.uc.Roles(GetTenantID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(roles)
}

// Stock godoc
// @Summary      Existencias de un producto en una sucursal
// @Tags         catalog
// @Produce      json
// @Param        location_id  query  string  true  "sucursal"
// @Param        product_id   query  string  true  "producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *CatalogHandler) Stock(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	productID := c.Query("product_id")
	if locationID == "" || productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id y product_id son requeridos"})
	}
	stock, err := h.uc.Stock(locationID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if stock == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STOCK_NOT_FOUND", Message: "sin inventario para ese producto en la sucursal"})
	}
	return c.JSON(stock)
}
