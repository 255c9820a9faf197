package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	appsales "github.com/tu-usuario/pos-cloud/internal/application/sales"
	"github.com/tu-usuario/pos-cloud/internal/domain"
)

// SalesHandler maneja el registro de ventas del POS y sus recibos.
type SalesHandler struct {
	createUC  *appsales.CreateSaleUseCase
	receiptUC *appsales.ReceiptUseCase
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(createUC *appsales.CreateSaleUseCase, receiptUC *appsales.ReceiptUseCase) *SalesHandler {
	return &SalesHandler{createUC: createUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	sale, err := h.createUC.Create(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id e items son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para completar la venta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// Receipt godoc
// @Summary      Descargar el recibo PDF de una venta
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	saleID := c.Params("id")

	pdfBytes, err := h.receiptUC.Generate(c.Context(), GetTenantID(c), saleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SALE_NOT_FOUND", Message: "la venta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt-`+saleID+`.pdf"`)
	return c.Send(pdfBytes)
}
