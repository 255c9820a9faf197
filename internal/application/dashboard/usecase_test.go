package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cloud/internal/application/dashboard"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

type fakeDashRepo struct {
	sales []repository.RecentSaleResult
	stock []repository.LowStockResult

	gotTenantID   string
	gotLocationID string
	gotThreshold  int
}

func (f *fakeDashRepo) GetRecentSales(_ context.Context, tenantID string, limit int) ([]repository.RecentSaleResult, error) {
	f.gotTenantID = tenantID
	if len(f.sales) > limit {
		return f.sales[:limit], nil
	}
	return f.sales, nil
}

func (f *fakeDashRepo) GetLowStock(_ context.Context, locationID string, threshold, limit int) ([]repository.LowStockResult, error) {
	f.gotLocationID = locationID
	f.gotThreshold = threshold
	return f.stock, nil
}

type fakeUserLocRepo struct {
	defaultLoc *entity.Location
}

func (f *fakeUserLocRepo) Assign(*entity.UserLocation) error { return nil }
func (f *fakeUserLocRepo) GetDefaultLocation(string) (*entity.Location, error) {
	return f.defaultLoc, nil
}

func TestGetOverview_SinFilas_DevuelveVacioNoError(t *testing.T) {
	repo := &fakeDashRepo{}
	uc := dashboard.NewOverviewUseCase(repo, &fakeUserLocRepo{})

	out, err := uc.GetOverview(context.Background(), "t1", "u1", "loc1")
	require.NoError(t, err)

	assert.NotNil(t, out.RecentSales, "sin ventas debe ser slice vacío, no nil")
	assert.NotNil(t, out.LowStockItems, "sin stock bajo debe ser slice vacío, no nil")
	assert.Empty(t, out.RecentSales)
	assert.Empty(t, out.LowStockItems)
}

func TestGetOverview_ResuelveSucursalPorDefecto(t *testing.T) {
	repo := &fakeDashRepo{}
	uc := dashboard.NewOverviewUseCase(repo, &fakeUserLocRepo{
		defaultLoc: &entity.Location{ID: "loc-default"},
	})

	out, err := uc.GetOverview(context.Background(), "t1", "u1", "")
	require.NoError(t, err)

	assert.Equal(t, "loc-default", out.LocationID)
	assert.Equal(t, "loc-default", repo.gotLocationID)
	assert.Equal(t, 10, repo.gotThreshold)
}

func TestGetOverview_SinSucursal_StockVacio(t *testing.T) {
	repo := &fakeDashRepo{
		stock: []repository.LowStockResult{{ProductID: "p1"}}, // no debería consultarse
	}
	uc := dashboard.NewOverviewUseCase(repo, &fakeUserLocRepo{})

	out, err := uc.GetOverview(context.Background(), "t1", "u1", "")
	require.NoError(t, err)

	assert.Empty(t, out.LocationID)
	assert.Empty(t, out.LowStockItems)
	assert.Empty(t, repo.gotLocationID, "no debe consultar stock sin sucursal")
}

func TestGetOverview_MapeaVentasYStock(t *testing.T) {
	created := time.Now()
	repo := &fakeDashRepo{
		sales: []repository.RecentSaleResult{
			{
				SaleID:            "s1",
				SaleNumber:        "S-100",
				TotalAmount:       decimal.NewFromInt(42),
				Status:            entity.SaleStatusCompleted,
				CreatedAt:         created,
				CustomerFirstName: "Ana",
				CustomerLastName:  "Gómez",
				LocationName:      "Main Store",
			},
			{SaleID: "s2", SaleNumber: "S-101", LocationName: "Main Store"},
		},
		stock: []repository.LowStockResult{
			{ProductID: "p1", ProductName: "Café 500g", SKU: "CAF-500", Quantity: 3, MinQuantity: 5},
		},
	}
	uc := dashboard.NewOverviewUseCase(repo, &fakeUserLocRepo{})

	out, err := uc.GetOverview(context.Background(), "t1", "u1", "loc1")
	require.NoError(t, err)
	require.Len(t, out.RecentSales, 2)
	require.Len(t, out.LowStockItems, 1)

	assert.Equal(t, "Ana Gómez", out.RecentSales[0].CustomerName)
	assert.Empty(t, out.RecentSales[1].CustomerName, "venta sin cliente no inventa nombre")
	assert.Equal(t, "CAF-500", out.LowStockItems[0].SKU)
	assert.Equal(t, "t1", repo.gotTenantID)
}
