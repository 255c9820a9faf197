package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

// ReceiptUseCase arma el recibo PDF de una venta ya registrada.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	tenantRepo   repository.TenantRepository
	locationRepo repository.LocationRepository
	customerRepo repository.CustomerRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	tenantRepo repository.TenantRepository,
	locationRepo repository.LocationRepository,
	customerRepo repository.CustomerRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		tenantRepo:   tenantRepo,
		locationRepo: locationRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// Generate devuelve el PDF del recibo de la venta. La venta debe pertenecer
// al tenant de la sesión; si no, se responde como inexistente.
func (uc *ReceiptUseCase) Generate(ctx context.Context, tenantID, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, fmt.Errorf("consultando venta: %w", err)
	}
	if sale == nil || sale.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	items, err := uc.saleRepo.GetItems(sale.ID)
	if err != nil {
		return nil, fmt.Errorf("consultando líneas de la venta: %w", err)
	}

	tenant, err := uc.tenantRepo.GetByID(sale.TenantID)
	if err != nil {
		return nil, fmt.Errorf("consultando tenant: %w", err)
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(sale.LocationID)
	if err != nil {
		return nil, fmt.Errorf("consultando sucursal: %w", err)
	}

	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		name := item.ProductID
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLine{ProductName: name, Item: item})
	}

	customer, err := uc.customerFor(sale.CustomerID)
	if err != nil {
		return nil, err
	}

	return uc.generator.GenerateReceiptPDF(ctx, sale, tenant, location, customer, lines)
}

// customerFor devuelve nil sin error para ventas de mostrador sin cliente.
func (uc *ReceiptUseCase) customerFor(customerID string) (*entity.Customer, error) {
	if customerID == "" {
		return nil, nil
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("consultando cliente: %w", err)
	}
	return customer, nil
}
