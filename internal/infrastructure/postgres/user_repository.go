package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// tenant_id y role_id son columnas NULLables: NULL en la base equivale a
// cadena vacía en la entidad (usuario todavía sin onboarding).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `
	id, COALESCE(tenant_id::text, ''), COALESCE(role_id::text, ''),
	email, password_hash, first_name, last_name, phone, avatar_url,
	active, created_at, updated_at`

// Create persiste un nuevo usuario (todavía sin tenant).
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, tenant_id, role_id, email, password_hash, first_name, last_name, phone, avatar_url, active, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.TenantID, user.RoleID, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Phone, user.AvatarURL, user.Active,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, o (nil, nil) si no existe perfil.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`
	u, err := r.scanOne(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := r.scanOne(context.Background(), query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update actualiza el perfil del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, first_name = $4, last_name = $5,
			phone = $6, avatar_url = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.AvatarURL, user.Active, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// LinkTenant fija tenant_id y role_id del usuario. Es un upsert: si el
// perfil todavía no existe (usuario de identidad externa sin fila local)
// lo crea de forma perezosa, para que el bootstrap no dependa del orden
// en que llegó el registro.
func (r *UserRepo) LinkTenant(userID, tenantID, roleID string) error {
	query := `
		INSERT INTO users (id, tenant_id, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (id)
		DO UPDATE SET tenant_id = EXCLUDED.tenant_id, role_id = EXCLUDED.role_id, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, userID, tenantID, roleID)
	if err != nil {
		return fmt.Errorf("link user to tenant: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.TenantID, &u.RoleID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Phone, &u.AvatarURL,
		&u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
