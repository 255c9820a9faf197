package sales

import (
	"context"

	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// La venta y el descuento de inventario confirman o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptLine línea de la venta ya resuelta con el nombre del producto,
// lista para el recibo.
type ReceiptLine struct {
	ProductName string
	Item        *entity.SaleItem
}

// ReceiptPDFGenerator genera el recibo de una venta. La implementación vive
// en infrastructure (Maroto).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		tenant *entity.Tenant,
		location *entity.Location,
		customer *entity.Customer,
		lines []ReceiptLine,
	) ([]byte, error)
}
