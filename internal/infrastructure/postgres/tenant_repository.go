package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
// Settings viaja como JSONB; pgx lo (des)serializa directo contra la entidad.
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un nuevo tenant. El constraint único del slug es el
// respaldo de la carrera check-then-act del bootstrap: si dos peticiones
// pasan la verificación a la vez, la segunda inserción falla aquí y se
// reporta como ErrSlugTaken.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, slug, settings, active, subscription_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.Slug, tenant.Settings,
		tenant.Active, tenant.SubscriptionStatus, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, slug, settings, active, subscription_status, created_at, updated_at
		FROM tenants WHERE id = $1`
	t, err := r.scanOne(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// GetBySlug obtiene un tenant por slug, o (nil, nil) si el slug está libre.
func (r *TenantRepo) GetBySlug(slug string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, slug, settings, active, subscription_status, created_at, updated_at
		FROM tenants WHERE slug = $1`
	t, err := r.scanOne(context.Background(), query, slug)
	if err != nil {
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}
	return t, nil
}

// Update actualiza un tenant existente.
func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	query := `
		UPDATE tenants SET name = $2, slug = $3, settings = $4, active = $5, subscription_status = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.Slug, tenant.Settings,
		tenant.Active, tenant.SubscriptionStatus,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

func (r *TenantRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Tenant, error) {
	var t entity.Tenant
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Slug, &t.Settings, &t.Active,
		&t.SubscriptionStatus, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
