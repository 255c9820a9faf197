package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)
var _ repository.UserLocationRepository = (*UserLocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para sucursales.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, tenant_id, name, address, phone, email, is_main, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.TenantID, location.Name, location.Address,
		location.Phone, location.Email, location.IsMain, location.Active,
		location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, tenant_id, name, address, phone, email, is_main, active, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.TenantID, &l.Name, &l.Address, &l.Phone, &l.Email,
		&l.IsMain, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListByTenant lista las sucursales del tenant, la principal primero.
func (r *LocationRepo) ListByTenant(tenantID string) ([]*entity.Location, error) {
	query := `
		SELECT id, tenant_id, name, address, phone, email, is_main, active, created_at, updated_at
		FROM locations WHERE tenant_id = $1 ORDER BY is_main DESC, name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.TenantID, &l.Name, &l.Address, &l.Phone, &l.Email, &l.IsMain, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UserLocationRepo vincula usuarios con sucursales sobre PostgreSQL.
type UserLocationRepo struct {
	q Querier
}

// NewUserLocationRepository construye el adaptador.
func NewUserLocationRepository(q Querier) *UserLocationRepo {
	return &UserLocationRepo{q: q}
}

// Assign vincula usuario y sucursal. Idempotente sobre el par (user, location).
func (r *UserLocationRepo) Assign(ul *entity.UserLocation) error {
	query := `
		INSERT INTO user_locations (user_id, location_id, is_default, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, location_id)
		DO UPDATE SET is_default = EXCLUDED.is_default`
	_, err := r.q.Exec(context.Background(), query,
		ul.UserID, ul.LocationID, ul.IsDefault, ul.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("assign user location: %w", err)
	}
	return nil
}

// GetDefaultLocation devuelve la sucursal con is_default=true del usuario,
// o (nil, nil) si no tiene ninguna asignada.
func (r *UserLocationRepo) GetDefaultLocation(userID string) (*entity.Location, error) {
	query := `
		SELECT l.id, l.tenant_id, l.name, l.address, l.phone, l.email, l.is_main, l.active, l.created_at, l.updated_at
		FROM user_locations ul
		JOIN locations l ON l.id = ul.location_id
		WHERE ul.user_id = $1 AND ul.is_default
		LIMIT 1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&l.ID, &l.TenantID, &l.Name, &l.Address, &l.Phone, &l.Email,
		&l.IsMain, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default location: %w", err)
	}
	return &l, nil
}
