package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
)

type fakeTenantRepo struct{ tenant *entity.Tenant }

func (r *fakeTenantRepo) Create(tenant *entity.Tenant) error { return nil }
func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	if r.tenant != nil && r.tenant.ID == id {
		return r.tenant, nil
	}
	return nil, nil
}
func (r *fakeTenantRepo) GetBySlug(slug string) (*entity.Tenant, error) { return nil, nil }
func (r *fakeTenantRepo) Update(tenant *entity.Tenant) error            { return nil }

type fakeLocationRepo struct{ location *entity.Location }

func (r *fakeLocationRepo) Create(location *entity.Location) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	if r.location != nil && r.location.ID == id {
		return r.location, nil
	}
	return nil, nil
}
func (r *fakeLocationRepo) ListByTenant(tenantID string) ([]*entity.Location, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customer *entity.Customer
	calls    int
}

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.calls++
	if r.customer != nil && r.customer.ID == id {
		return r.customer, nil
	}
	return nil, nil
}
func (r *fakeCustomerRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeGenerator struct {
	lastSale     *entity.Sale
	lastCustomer *entity.Customer
	lastLines    []ReceiptLine
}

func (g *fakeGenerator) GenerateReceiptPDF(
	ctx context.Context,
	sale *entity.Sale,
	tenant *entity.Tenant,
	location *entity.Location,
	customer *entity.Customer,
	lines []ReceiptLine,
) ([]byte, error) {
	g.lastSale = sale
	g.lastCustomer = customer
	g.lastLines = lines
	return []byte("%PDF-1.4"), nil
}

func newReceiptFixture() (*ReceiptUseCase, *fakeTxRunner, *fakeCustomerRepo, *fakeGenerator) {
	tx := newFakeTxRunner()
	customerRepo := &fakeCustomerRepo{}
	gen := &fakeGenerator{}
	uc := NewReceiptUseCase(
		tx.saleRepo,
		tx.productRepo,
		&fakeTenantRepo{tenant: &entity.Tenant{ID: "tenant-1", Name: "Mi Tienda"}},
		&fakeLocationRepo{location: &entity.Location{ID: "loc-1", Name: "Main Store"}},
		customerRepo,
		gen,
	)
	return uc, tx, customerRepo, gen
}

func TestReceipt_Generate(t *testing.T) {
	uc, tx, _, gen := newReceiptFixture()
	tx.productRepo.products["prod-1"] = &entity.Product{
		ID: "prod-1", TenantID: "tenant-1", Name: "Café molido",
		SellingPrice: price("10.00"), TaxRate: price("19"),
	}
	tx.saleRepo.sales = append(tx.saleRepo.sales, &entity.Sale{
		ID: "sale-1", TenantID: "tenant-1", LocationID: "loc-1", SaleNumber: "S-1-abc",
	})
	tx.saleRepo.items = append(tx.saleRepo.items, &entity.SaleItem{
		ID: "item-1", SaleID: "sale-1", ProductID: "prod-1", Quantity: 2,
	})

	pdf, err := uc.Generate(context.Background(), "tenant-1", "sale-1")

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.lastSale)
	assert.Equal(t, "sale-1", gen.lastSale.ID)
	require.Len(t, gen.lastLines, 1)
	assert.Equal(t, "Café molido", gen.lastLines[0].ProductName)
	assert.Nil(t, gen.lastCustomer)
}

func TestReceipt_WithCustomer(t *testing.T) {
	uc, tx, customerRepo, gen := newReceiptFixture()
	customerRepo.customer = &entity.Customer{ID: "cust-1", FirstName: "Ana", LastName: "García"}
	tx.saleRepo.sales = append(tx.saleRepo.sales, &entity.Sale{
		ID: "sale-1", TenantID: "tenant-1", LocationID: "loc-1", CustomerID: "cust-1",
	})

	_, err := uc.Generate(context.Background(), "tenant-1", "sale-1")

	require.NoError(t, err)
	require.NotNil(t, gen.lastCustomer)
	assert.Equal(t, "Ana", gen.lastCustomer.FirstName)
}

func TestReceipt_ForeignTenantSale(t *testing.T) {
	uc, tx, customerRepo, _ := newReceiptFixture()
	tx.saleRepo.sales = append(tx.saleRepo.sales, &entity.Sale{
		ID: "sale-1", TenantID: "otro-tenant", LocationID: "loc-1",
	})

	pdf, err := uc.Generate(context.Background(), "tenant-1", "sale-1")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, pdf)
	assert.Zero(t, customerRepo.calls)
}

func TestReceipt_SaleNotFound(t *testing.T) {
	uc, _, _, _ := newReceiptFixture()

	pdf, err := uc.Generate(context.Background(), "tenant-1", "nope")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, pdf)
}
