package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// customer_id es NULLable: NULL equivale a venta de mostrador sin cliente.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, tenant_id, location_id, user_id, customer_id, sale_number,
			subtotal, tax_amount, discount_amount, total_amount,
			payment_method, payment_status, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.TenantID, sale.LocationID, sale.UserID, sale.CustomerID,
		sale.SaleNumber, sale.Subtotal, sale.TaxAmount, sale.DiscountAmount,
		sale.TotalAmount, sale.PaymentMethod, sale.PaymentStatus, sale.Status,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, tax_rate, tax_amount, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity,
		item.UnitPrice, item.TaxRate, item.TaxAmount, item.TotalAmount,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID, o (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, tenant_id, location_id, user_id, COALESCE(customer_id::text, ''), sale_number,
			subtotal, tax_amount, discount_amount, total_amount,
			payment_method, payment_status, status, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TenantID, &s.LocationID, &s.UserID, &s.CustomerID,
		&s.SaleNumber, &s.Subtotal, &s.TaxAmount, &s.DiscountAmount,
		&s.TotalAmount, &s.PaymentMethod, &s.PaymentStatus, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItems lista las líneas de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, tax_rate, tax_amount, total_amount, created_at
		FROM sale_items WHERE sale_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TaxRate, &it.TaxAmount, &it.TotalAmount, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
