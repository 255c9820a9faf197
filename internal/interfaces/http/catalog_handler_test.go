package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cloud/internal/application/catalog"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	apphttp "github.com/tu-usuario/pos-cloud/internal/interfaces/http"
)

type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error            { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	return r.products, nil
}

type stubCustomerRepo struct{}

func (r *stubCustomerRepo) Create(*entity.Customer) error            { return nil }
func (r *stubCustomerRepo) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) ListByTenant(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type stubLocationRepo struct{}

func (r *stubLocationRepo) Create(*entity.Location) error            { return nil }
func (r *stubLocationRepo) GetByID(string) (*entity.Location, error) { return nil, nil }
func (r *stubLocationRepo) ListByTenant(string) ([]*entity.Location, error) {
	return nil, nil
}

type stubRoleRepo struct{}

func (r *stubRoleRepo) Create(*entity.Role) error            { return nil }
func (r *stubRoleRepo) GetByID(string) (*entity.Role, error) { return nil, nil }
func (r *stubRoleRepo) ListByTenant(string) ([]*entity.Role, error) {
	return nil, nil
}

type stubInventoryRepo struct {
	item *entity.InventoryItem
}

func (r *stubInventoryRepo) Upsert(*entity.InventoryItem) error { return nil }
func (r *stubInventoryRepo) GetByLocationAndProduct(string, string) (*entity.InventoryItem, error) {
	return r.item, nil
}
func (r *stubInventoryRepo) Decrement(string, string, int) error { return nil }

func buildCatalogApp(products *stubProductRepo, inv *stubInventoryRepo) *fiber.App {
	uc := catalog.NewCatalogUseCase(products, &stubCustomerRepo{}, &stubLocationRepo{}, &stubRoleRepo{}, inv)
	handler := apphttp.NewCatalogHandler(uc)

	app := fiber.New()
	protected := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireTenant())
	protected.Get("/products", handler.Products)
	protected.Get("/inventory/stock", handler.Stock)
	return app
}

func TestCatalogProducts_ListaDelTenant(t *testing.T) {
	products := &stubProductRepo{products: []*entity.Product{
		{ID: "p1", TenantID: testTenantID, Name: "Filtro de aceite", SKU: "FA-01", Active: true},
	}}
	app := buildCatalogApp(products, &stubInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/products?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testTenantID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Filtro de aceite", body[0]["name"])
	assert.Equal(t, "FA-01", body[0]["sku"])
}

func TestCatalogStock_SinFilaRetorna404(t *testing.T) {
	app := buildCatalogApp(&stubProductRepo{}, &stubInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/stock?location_id=l1&product_id=p1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testTenantID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogStock_FaltanParametrosRetorna400(t *testing.T) {
	app := buildCatalogApp(&stubProductRepo{}, &stubInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/stock?location_id=l1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testTenantID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
