package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura del resumen del dashboard.
// Siempre va contra el pool: estas consultas corren en paralelo y no
// participan en transacciones.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de lectura del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetRecentSales devuelve las últimas ventas del tenant con el nombre del
// cliente y de la sucursal ya resueltos. Sin filas devuelve slice vacío.
func (r *DashboardRepo) GetRecentSales(ctx context.Context, tenantID string, limit int) ([]repository.RecentSaleResult, error) {
	query := `
		SELECT s.id, s.sale_number, s.total_amount, s.status, s.created_at,
			COALESCE(c.first_name, ''), COALESCE(c.last_name, ''),
			COALESCE(l.name, '')
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		LEFT JOIN locations l ON l.id = s.location_id
		WHERE s.tenant_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sales: %w", err)
	}
	defer rows.Close()

	results := make([]repository.RecentSaleResult, 0, limit)
	for rows.Next() {
		var s repository.RecentSaleResult
		if err := rows.Scan(&s.SaleID, &s.SaleNumber, &s.TotalAmount, &s.Status, &s.CreatedAt,
			&s.CustomerFirstName, &s.CustomerLastName, &s.LocationName); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// GetLowStock devuelve filas de inventario de la sucursal con cantidad por
// debajo del umbral, con los datos del producto. Sin filas devuelve slice vacío.
func (r *DashboardRepo) GetLowStock(ctx context.Context, locationID string, threshold, limit int) ([]repository.LowStockResult, error) {
	query := `
		SELECT i.id, p.id, p.name, p.sku, p.image_url, i.quantity, i.min_quantity
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.location_id = $1 AND i.quantity < $2
		ORDER BY i.quantity ASC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, locationID, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	defer rows.Close()

	results := make([]repository.LowStockResult, 0, limit)
	for rows.Next() {
		var ls repository.LowStockResult
		if err := rows.Scan(&ls.InventoryID, &ls.ProductID, &ls.ProductName, &ls.SKU, &ls.ImageURL, &ls.Quantity, &ls.MinQuantity); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		results = append(results, ls)
	}
	return results, rows.Err()
}
