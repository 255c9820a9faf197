// Package dashboard contiene el agregador de lecturas que alimenta el
// resumen del dashboard: ventas recientes del tenant y productos con
// stock bajo en la sucursal por defecto del usuario.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

const (
	recentSalesLimit  = 5  // ventas en el widget de actividad
	lowStockLimit     = 5  // filas en el widget de stock bajo
	lowStockThreshold = 10 // quantity < threshold
)

// OverviewUseCase agrega las lecturas del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only). Ambas consultas
// son best-effort: sin filas el resultado es un slice vacío, nunca un error.
type OverviewUseCase struct {
	dashRepo    repository.DashboardRepository
	userLocRepo repository.UserLocationRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(dashRepo repository.DashboardRepository, userLocRepo repository.UserLocationRepository) *OverviewUseCase {
	return &OverviewUseCase{dashRepo: dashRepo, userLocRepo: userLocRepo}
}

// GetOverview construye el DashboardOverviewDTO para el tenant indicado.
// Si locationID viene vacío se resuelve la sucursal por defecto del usuario
// (user_locations.is_default=true); sin sucursal, el widget de stock queda vacío.
//
// Las dos consultas a DB corren en paralelo.
func (uc *OverviewUseCase) GetOverview(
	ctx context.Context,
	tenantID, userID, locationID string,
) (*dto.DashboardOverviewDTO, error) {
	if locationID == "" {
		loc, err := uc.userLocRepo.GetDefaultLocation(userID)
		if err == nil && loc != nil {
			locationID = loc.ID
		}
	}

	type salesResult struct {
		rows []repository.RecentSaleResult
		err  error
	}
	type stockResult struct {
		rows []repository.LowStockResult
		err  error
	}

	salesCh := make(chan salesResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		rows, err := uc.dashRepo.GetRecentSales(ctx, tenantID, recentSalesLimit)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		if locationID == "" {
			stockCh <- stockResult{nil, nil}
			return
		}
		rows, err := uc.dashRepo.GetLowStock(ctx, locationID, lowStockThreshold, lowStockLimit)
		stockCh <- stockResult{rows, err}
	}()

	sales := <-salesCh
	stock := <-stockCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", sales.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", stock.err)
	}

	out := &dto.DashboardOverviewDTO{
		LocationID:    locationID,
		RecentSales:   make([]dto.RecentSaleDTO, 0, len(sales.rows)),
		LowStockItems: make([]dto.LowStockDTO, 0, len(stock.rows)),
	}
	for _, s := range sales.rows {
		out.RecentSales = append(out.RecentSales, dto.RecentSaleDTO{
			SaleID:       s.SaleID,
			SaleNumber:   s.SaleNumber,
			TotalAmount:  s.TotalAmount,
			Status:       s.Status,
			CustomerName: strings.TrimSpace(s.CustomerFirstName + " " + s.CustomerLastName),
			LocationName: s.LocationName,
			CreatedAt:    s.CreatedAt,
		})
	}
	for _, i := range stock.rows {
		out.LowStockItems = append(out.LowStockItems, dto.LowStockDTO{
			ProductID:   i.ProductID,
			ProductName: i.ProductName,
			SKU:         i.SKU,
			ImageURL:    i.ImageURL,
			Quantity:    i.Quantity,
			MinQuantity: i.MinQuantity,
		})
	}
	return out, nil
}
