package onboarding_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/application/onboarding"
	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeTenantRepo struct {
	bySlug    map[string]*entity.Tenant
	created   []*entity.Tenant
	createErr error
}

func (f *fakeTenantRepo) Create(t *entity.Tenant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, t)
	return nil
}
func (f *fakeTenantRepo) GetByID(string) (*entity.Tenant, error) { return nil, nil }
func (f *fakeTenantRepo) GetBySlug(slug string) (*entity.Tenant, error) {
	return f.bySlug[slug], nil
}
func (f *fakeTenantRepo) Update(*entity.Tenant) error { return nil }

type fakeRoleRepo struct {
	created   []*entity.Role
	createErr error
}

func (f *fakeRoleRepo) Create(r *entity.Role) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	return nil
}
func (f *fakeRoleRepo) GetByID(string) (*entity.Role, error)        { return nil, nil }
func (f *fakeRoleRepo) ListByTenant(string) ([]*entity.Role, error) { return nil, nil }

type fakeLocationRepo struct {
	created   []*entity.Location
	createErr error
}

func (f *fakeLocationRepo) Create(l *entity.Location) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, l)
	return nil
}
func (f *fakeLocationRepo) GetByID(string) (*entity.Location, error)        { return nil, nil }
func (f *fakeLocationRepo) ListByTenant(string) ([]*entity.Location, error) { return nil, nil }

type fakeUserRepo struct {
	linkedTenantID string
	linkedRoleID   string
	linkErr        error
}

func (f *fakeUserRepo) Create(*entity.User) error               { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error)    { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(*entity.User) error               { return nil }
func (f *fakeUserRepo) LinkTenant(userID, tenantID, roleID string) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.linkedTenantID = tenantID
	f.linkedRoleID = roleID
	return nil
}

type fakeUserLocationRepo struct {
	assigned  []*entity.UserLocation
	assignErr error
}

func (f *fakeUserLocationRepo) Assign(ul *entity.UserLocation) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assigned = append(f.assigned, ul)
	return nil
}
func (f *fakeUserLocationRepo) GetDefaultLocation(string) (*entity.Location, error) {
	return nil, nil
}

type repos struct {
	tenants   *fakeTenantRepo
	roles     *fakeRoleRepo
	locations *fakeLocationRepo
	users     *fakeUserRepo
	userLocs  *fakeUserLocationRepo
}

func newRepos() repos {
	return repos{
		tenants:   &fakeTenantRepo{bySlug: map[string]*entity.Tenant{}},
		roles:     &fakeRoleRepo{},
		locations: &fakeLocationRepo{},
		users:     &fakeUserRepo{},
		userLocs:  &fakeUserLocationRepo{},
	}
}

func newUseCase(r repos) *onboarding.BootstrapUseCase {
	return onboarding.NewBootstrapUseCase(r.tenants, r.roles, r.locations, r.users, r.userLocs)
}

func validProfile() dto.BusinessProfile {
	return dto.BusinessProfile{
		BusinessName: "Acme Retail",
		BusinessSlug: "acme-retail",
		Address:      "123 Main St",
		City:         "Springfield",
		PostalCode:   "10001",
		Country:      "United States",
		Phone:        "+1234567890",
		Email:        "store@acme.test",
		TaxID:        "TAX-99887",
		TaxRate:      "21",
		Currency:     "USD",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Bootstrap — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrap_CaminoFeliz(t *testing.T) {
	r := newRepos()
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	require.NoError(t, err)

	// Tenant activo con settings completos
	require.Len(t, r.tenants.created, 1)
	tenant := r.tenants.created[0]
	assert.True(t, tenant.Active)
	assert.Equal(t, "Acme Retail", tenant.Name)
	assert.Equal(t, "acme-retail", tenant.Slug)
	assert.Equal(t, "TAX-99887", tenant.Settings.TaxID)
	assert.Equal(t, "USD", tenant.Settings.Currency)
	assert.Equal(t, "Springfield", tenant.Settings.Address.City)

	// Rol Admin con los seis permisos en true
	require.Len(t, r.roles.created, 1)
	role := r.roles.created[0]
	assert.Equal(t, "Admin", role.Name)
	assert.Equal(t, tenant.ID, role.TenantID)
	for _, perm := range []string{"admin", "pos", "inventory", "customers", "reports", "settings"} {
		assert.True(t, role.Permissions[perm], "permiso %q debe ser true", perm)
	}

	// Sucursal principal
	require.Len(t, r.locations.created, 1)
	loc := r.locations.created[0]
	assert.Equal(t, "Main Store", loc.Name)
	assert.True(t, loc.IsMain)
	assert.Equal(t, tenant.ID, loc.TenantID)
	assert.Equal(t, "123 Main St, Springfield, 10001, United States", loc.Address)

	// Usuario vinculado con los ids recién creados
	assert.Equal(t, tenant.ID, r.users.linkedTenantID)
	assert.Equal(t, role.ID, r.users.linkedRoleID)

	// Sucursal por defecto asignada
	require.Len(t, r.userLocs.assigned, 1)
	assert.Equal(t, "u1", r.userLocs.assigned[0].UserID)
	assert.Equal(t, loc.ID, r.userLocs.assigned[0].LocationID)
	assert.True(t, r.userLocs.assigned[0].IsDefault)
}

// ──────────────────────────────────────────────────────────────────────────────
// Slug tomado y carrera de slug
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrap_SlugTomado_NoEscribeNada(t *testing.T) {
	r := newRepos()
	r.tenants.bySlug["acme-retail"] = &entity.Tenant{ID: "t-existente", Slug: "acme-retail"}
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	assert.ErrorIs(t, err, domain.ErrSlugTaken)

	assert.Empty(t, r.tenants.created, "no debe insertar tenant")
	assert.Empty(t, r.roles.created, "no debe insertar rol")
	assert.Empty(t, r.locations.created, "no debe insertar sucursal")
	assert.Empty(t, r.users.linkedTenantID, "no debe vincular al usuario")
}

// Dos bootstraps simultáneos pueden pasar ambos el pre-chequeo; el constraint
// único del almacén hace que el segundo insert falle y eso debe aflorar como
// ErrSlugTaken, no como un TenantCreateFailed genérico.
func TestBootstrap_CarreraDeSlug_RetornaSlugTaken(t *testing.T) {
	r := newRepos()
	r.tenants.createErr = fmt.Errorf("insert tenant: %w", domain.ErrSlugTaken)
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
	assert.Empty(t, r.roles.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cortes a mitad de secuencia — visibilidad atómica del vínculo
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrap_FalloEnRol_UsuarioSigueSinTenant(t *testing.T) {
	r := newRepos()
	r.roles.createErr = errors.New("permission denied")
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	assert.ErrorIs(t, err, domain.ErrRoleCreate)
	assert.Contains(t, err.Error(), "permission denied", "el mensaje del almacén debe viajar en el error")

	// El tenant del paso anterior queda huérfano, pero el usuario no se vincula:
	// el guard lo sigue mandando a onboarding.
	assert.Len(t, r.tenants.created, 1)
	assert.Empty(t, r.users.linkedTenantID)
	assert.Empty(t, r.locations.created)
	assert.Empty(t, r.userLocs.assigned)
}

func TestBootstrap_FalloEnSucursal_CortaAntesDelVinculo(t *testing.T) {
	r := newRepos()
	r.locations.createErr = errors.New("constraint violation")
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	assert.ErrorIs(t, err, domain.ErrLocationCreate)
	assert.Empty(t, r.users.linkedTenantID)
	assert.Empty(t, r.userLocs.assigned)
}

func TestBootstrap_FalloEnVinculo_RetornaUserLink(t *testing.T) {
	r := newRepos()
	r.users.linkErr = errors.New("row not found")
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	assert.ErrorIs(t, err, domain.ErrUserLink)
	assert.Empty(t, r.userLocs.assigned, "no debe asignar sucursal si el vínculo falló")
}

func TestBootstrap_FalloEnUserLocation_RetornaUserLocation(t *testing.T) {
	r := newRepos()
	r.userLocs.assignErr = errors.New("duplicate key")
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", validProfile())
	assert.ErrorIs(t, err, domain.ErrUserLocation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación — por campo y antes de cualquier llamada remota
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrap_Validacion_ReportaTodosLosCampos(t *testing.T) {
	r := newRepos()
	uc := newUseCase(r)

	err := uc.Bootstrap("u1", dto.BusinessProfile{
		BusinessName: "X",           // corto
		BusinessSlug: "Mi Tienda",   // patrón inválido
		Address:      "123",         // corto
		City:         "S",           // corto
		PostalCode:   "10",          // corto
		Country:      "U",           // corto
		Phone:        "123",         // corto
		Email:        "no-es-email", // inválido
		TaxID:        "123",         // corto
		TaxRate:      "abc",         // no numérico
		Currency:     "XXX",         // fuera del set
	})

	var verr *onboarding.ValidationError
	require.ErrorAs(t, err, &verr)

	got := map[string]bool{}
	for _, f := range verr.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{
		"business_name", "business_slug", "address", "city", "postal_code",
		"country", "phone", "email", "tax_id", "tax_rate", "currency",
	} {
		assert.True(t, got[want], "falta error del campo %q", want)
	}

	// Nada llegó al almacén
	assert.Empty(t, r.tenants.created)
	assert.Empty(t, r.roles.created)
}

func TestBootstrap_MonedaSoportada(t *testing.T) {
	for _, cur := range []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "MXN"} {
		r := newRepos()
		uc := newUseCase(r)
		in := validProfile()
		in.Currency = cur
		assert.NoError(t, uc.Bootstrap("u1", in), "moneda %s", cur)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DeriveSlug
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Awesome Store!", "my-awesome-store"},
		{"Acme   Retail", "acme-retail"},
		{"Café París", "cafe-paris"},
		{"Tienda#1", "tienda1"},
		{"  spaced  ", "spaced"},
		{"UPPER", "upper"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, onboarding.DeriveSlug(tc.in), "entrada %q", tc.in)
	}
}

// El slug derivado debe pasar la misma validación que uno manual.
func TestDeriveSlug_PasaValidacion(t *testing.T) {
	r := newRepos()
	uc := newUseCase(r)
	in := validProfile()
	in.BusinessSlug = onboarding.DeriveSlug("My Awesome Store!")
	assert.NoError(t, uc.Bootstrap("u1", in))
}
