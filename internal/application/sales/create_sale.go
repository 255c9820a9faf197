// Package sales implementa el registro de ventas desde el punto de venta:
// la venta, sus líneas y el descuento de inventario confirman dentro de una
// sola transacción, o no confirma nada.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// CreateSaleUseCase registra una venta del POS.
type CreateSaleUseCase struct {
	txRunner TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// Create valida la entrada, resuelve precios, descuenta inventario e inserta
// venta + líneas en una transacción. Stock insuficiente o un producto ajeno
// al tenant abortan todo (rollback).
func (uc *CreateSaleUseCase) Create(
	ctx context.Context,
	tenantID, userID string,
	in dto.CreateSaleRequest,
) (*dto.SaleResponse, error) {
	if in.LocationID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		LocationID:     in.LocationID,
		UserID:         userID,
		CustomerID:     in.CustomerID,
		SaleNumber:     saleNumber(now),
		DiscountAmount: decimal.Zero,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  "paid",
		Status:         entity.SaleStatusCompleted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var out *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		subtotal := decimal.Zero
		taxTotal := decimal.Zero
		items := make([]*entity.SaleItem, 0, len(in.Items))
		details := make([]dto.SaleItemDetail, 0, len(in.Items))

		for _, line := range in.Items {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.TenantID != tenantID {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
			}

			if err := inventoryRepo.Decrement(in.LocationID, product.ID, line.Quantity); err != nil {
				return err
			}

			qty := decimal.NewFromInt(int64(line.Quantity))
			lineSubtotal := product.SellingPrice.Mul(qty)
			lineTax := lineSubtotal.Mul(product.TaxRate).Div(oneHundred).Round(2)

			items = append(items, &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   product.ID,
				Quantity:    line.Quantity,
				UnitPrice:   product.SellingPrice,
				TaxRate:     product.TaxRate,
				TaxAmount:   lineTax,
				TotalAmount: lineSubtotal.Add(lineTax),
				CreatedAt:   now,
			})
			details = append(details, dto.SaleItemDetail{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   product.SellingPrice,
				TaxAmount:   lineTax,
				TotalAmount: lineSubtotal.Add(lineTax),
			})

			subtotal = subtotal.Add(lineSubtotal)
			taxTotal = taxTotal.Add(lineTax)
		}

		sale.Subtotal = subtotal.Round(2)
		sale.TaxAmount = taxTotal.Round(2)
		sale.TotalAmount = subtotal.Add(taxTotal).Round(2)

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}

		out = &dto.SaleResponse{
			ID:            sale.ID,
			SaleNumber:    sale.SaleNumber,
			LocationID:    sale.LocationID,
			CustomerID:    sale.CustomerID,
			Subtotal:      sale.Subtotal,
			TaxAmount:     sale.TaxAmount,
			TotalAmount:   sale.TotalAmount,
			PaymentMethod: sale.PaymentMethod,
			Status:        sale.Status,
			Items:         details,
			CreatedAt:     sale.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// saleNumber genera un consecutivo legible: S-<unix>-<sufijo corto>.
func saleNumber(now time.Time) string {
	return fmt.Sprintf("S-%d-%s", now.Unix(), uuid.New().String()[:8])
}
