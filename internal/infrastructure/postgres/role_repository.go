package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol con su mapa de permisos (JSONB).
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, tenant_id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.TenantID, role.Name, role.Permissions,
		role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, tenant_id, name, permissions, created_at, updated_at
		FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.TenantID, &role.Name, &role.Permissions,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// ListByTenant lista los roles del tenant.
func (r *RoleRepo) ListByTenant(tenantID string) ([]*entity.Role, error) {
	query := `
		SELECT id, tenant_id, name, permissions, created_at, updated_at
		FROM roles WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.TenantID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
