package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Los precios son NUMERIC y se escanean a decimal vía el codec del pool.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, name, sku, image_url, selling_price, cost_price, tax_rate, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.TenantID, product.Name, product.SKU, product.ImageURL,
		product.SellingPrice, product.CostPrice, product.TaxRate, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, tenant_id, name, sku, image_url, selling_price, cost_price, tax_rate, active, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.TenantID, &p.Name, &p.SKU, &p.ImageURL,
		&p.SellingPrice, &p.CostPrice, &p.TaxRate, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByTenant lista productos del tenant con paginación.
func (r *ProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, tenant_id, name, sku, image_url, selling_price, cost_price, tax_rate, active, created_at, updated_at
		FROM products WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.SKU, &p.ImageURL, &p.SellingPrice, &p.CostPrice, &p.TaxRate, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// InventoryRepo existencias por sucursal sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert inserta o actualiza la cantidad por (sucursal, producto).
func (r *InventoryRepo) Upsert(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory (id, location_id, product_id, quantity, min_quantity, max_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (location_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, min_quantity = EXCLUDED.min_quantity,
			max_quantity = EXCLUDED.max_quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.LocationID, item.ProductID,
		item.Quantity, item.MinQuantity, item.MaxQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// GetByLocationAndProduct obtiene la fila de inventario, o (nil, nil) si no existe.
func (r *InventoryRepo) GetByLocationAndProduct(locationID, productID string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, location_id, product_id, quantity, min_quantity, max_quantity, created_at, updated_at
		FROM inventory WHERE location_id = $1 AND product_id = $2`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, locationID, productID).Scan(
		&it.ID, &it.LocationID, &it.ProductID,
		&it.Quantity, &it.MinQuantity, &it.MaxQuantity,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &it, nil
}

// Decrement descuenta qty unidades de forma atómica. El WHERE evita saldos
// negativos: cero filas afectadas significa stock insuficiente (o fila
// inexistente), y la venta debe abortar.
func (r *InventoryRepo) Decrement(locationID, productID string, qty int) error {
	query := `
		UPDATE inventory SET quantity = quantity - $3, updated_at = now()
		WHERE location_id = $1 AND product_id = $2 AND quantity >= $3`
	cmd, err := r.q.Exec(context.Background(), query, locationID, productID, qty)
	if err != nil {
		return fmt.Errorf("decrement inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
