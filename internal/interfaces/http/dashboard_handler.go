package http

import (
	"github.com/gofiber/fiber/v2"

	appdashboard "github.com/tu-usuario/pos-cloud/internal/application/dashboard"
	"github.com/tu-usuario/pos-cloud/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appdashboard.OverviewUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appdashboard.OverviewUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetOverview devuelve el resumen del dashboard: últimas ventas con cliente
// y sucursal resueltos, más las alertas de stock bajo de la sucursal activa.
// GET /api/dashboard/overview?location_id=<opcional>
//
// Sin location_id se usa la sucursal por defecto del usuario. Un tenant
// recién creado recibe listas vacías, nunca un error.
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	userID := GetUserID(c)
	locationID := c.Query("location_id")

	overview, err := h.uc.GetOverview(c.Context(), tenantID, userID, locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(overview)
}
