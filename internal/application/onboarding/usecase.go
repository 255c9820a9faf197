// Package onboarding implementa el bootstrap de tenant: la secuencia que
// provisiona un negocio nuevo (tenant, rol Admin, sucursal principal) y
// vincula al usuario autenticado con los tres.
//
// La secuencia NO es una transacción atómica: son escrituras remotas
// ordenadas con corte en el primer fallo. Un fallo a mitad de camino deja
// filas huérfanas (tenant/rol/sucursal sin usuario), pero el usuario sigue
// sin tenant mientras el update final no haya confirmado, así que el guard
// de acceso lo sigue mandando a onboarding y el reintento es seguro desde
// su perspectiva.
package onboarding

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/domain"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/domain/repository"
)

// ValidationError agrupa los errores de formulario. Se reportan todos
// juntos, por campo, antes de ejecutar ninguna llamada remota.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "campos inválidos: " + strings.Join(names, ", ")
}

// BootstrapUseCase ejecuta la provisión del tenant.
type BootstrapUseCase struct {
	tenantRepo  repository.TenantRepository
	roleRepo    repository.RoleRepository
	locRepo     repository.LocationRepository
	userRepo    repository.UserRepository
	userLocRepo repository.UserLocationRepository
}

// NewBootstrapUseCase construye el caso de uso con los puertos de persistencia.
func NewBootstrapUseCase(
	tenantRepo repository.TenantRepository,
	roleRepo repository.RoleRepository,
	locRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	userLocRepo repository.UserLocationRepository,
) *BootstrapUseCase {
	return &BootstrapUseCase{
		tenantRepo:  tenantRepo,
		roleRepo:    roleRepo,
		locRepo:     locRepo,
		userRepo:    userRepo,
		userLocRepo: userLocRepo,
	}
}

// Bootstrap provisiona el negocio para el usuario indicado:
//
//  1. valida el formulario (sin escrituras si falla)
//  2. chequea unicidad del slug               → domain.ErrSlugTaken
//  3. inserta el tenant                       → domain.ErrTenantCreate
//  4. inserta el rol "Admin"                  → domain.ErrRoleCreate
//  5. inserta la sucursal "Main Store"        → domain.ErrLocationCreate
//  6. vincula tenant_id/role_id al usuario    → domain.ErrUserLink
//  7. asigna la sucursal por defecto          → domain.ErrUserLocation
//
// Cada paso se emite solo tras confirmar el anterior (el id generado de un
// paso alimenta al siguiente). Dos bootstraps simultáneos con el mismo slug
// pueden pasar ambos el chequeo del paso 2; el constraint único del almacén
// es el respaldo y esa carrera termina en ErrSlugTaken, nunca en dos
// tenants con el mismo slug.
func (uc *BootstrapUseCase) Bootstrap(userID string, in dto.BusinessProfile) error {
	if verr := validate(in); verr != nil {
		return verr
	}

	existing, err := uc.tenantRepo.GetBySlug(in.BusinessSlug)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTenantCreate, err)
	}
	if existing != nil {
		return domain.ErrSlugTaken
	}

	now := time.Now()
	tenant := &entity.Tenant{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(in.BusinessName),
		Slug: strings.TrimSpace(in.BusinessSlug),
		Settings: entity.TenantSettings{
			TaxID:          strings.TrimSpace(in.TaxID),
			DefaultTaxRate: in.TaxRate,
			Currency:       in.Currency,
			Address: entity.TenantAddress{
				Street:     strings.TrimSpace(in.Address),
				City:       strings.TrimSpace(in.City),
				PostalCode: strings.TrimSpace(in.PostalCode),
				Country:    strings.TrimSpace(in.Country),
			},
		},
		Active:             true,
		SubscriptionStatus: "trial",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.tenantRepo.Create(tenant); err != nil {
		// La carrera del slug aflora aquí como violación del constraint único.
		if errors.Is(err, domain.ErrSlugTaken) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("%w: %v", domain.ErrTenantCreate, err)
	}

	role := &entity.Role{
		ID:          uuid.New().String(),
		TenantID:    tenant.ID,
		Name:        entity.AdminRoleName,
		Permissions: entity.AdminPermissions(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(role); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRoleCreate, err)
	}

	location := &entity.Location{
		ID:       uuid.New().String(),
		TenantID: tenant.ID,
		Name:     entity.MainLocationName,
		Address: fmt.Sprintf("%s, %s, %s, %s",
			in.Address, in.City, in.PostalCode, in.Country),
		Phone:     in.Phone,
		Email:     in.Email,
		IsMain:    true,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locRepo.Create(location); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocationCreate, err)
	}

	if err := uc.userRepo.LinkTenant(userID, tenant.ID, role.ID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUserLink, err)
	}

	if err := uc.userLocRepo.Assign(&entity.UserLocation{
		UserID:     userID,
		LocationID: location.ID,
		IsDefault:  true,
		CreatedAt:  now,
	}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUserLocation, err)
	}

	return nil
}

func validate(in dto.BusinessProfile) *ValidationError {
	var fields []dto.FieldError
	add := func(field, msg string) {
		fields = append(fields, dto.FieldError{Field: field, Message: msg})
	}

	if len(strings.TrimSpace(in.BusinessName)) < 2 {
		add("business_name", "el nombre del negocio debe tener al menos 2 caracteres")
	}
	slug := strings.TrimSpace(in.BusinessSlug)
	if len(slug) < 2 {
		add("business_slug", "el slug debe tener al menos 2 caracteres")
	} else if !slugPattern.MatchString(slug) {
		add("business_slug", "el slug solo admite minúsculas, números y guiones")
	}
	if len(strings.TrimSpace(in.Address)) < 5 {
		add("address", "la dirección debe tener al menos 5 caracteres")
	}
	if len(strings.TrimSpace(in.City)) < 2 {
		add("city", "la ciudad debe tener al menos 2 caracteres")
	}
	if len(strings.TrimSpace(in.PostalCode)) < 3 {
		add("postal_code", "el código postal debe tener al menos 3 caracteres")
	}
	if len(strings.TrimSpace(in.Country)) < 2 {
		add("country", "el país debe tener al menos 2 caracteres")
	}
	if len(strings.TrimSpace(in.Phone)) < 5 {
		add("phone", "el teléfono debe tener al menos 5 caracteres")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		add("email", "el email no es válido")
	}
	if len(strings.TrimSpace(in.TaxID)) < 5 {
		add("tax_id", "el identificador tributario debe tener al menos 5 caracteres")
	}
	if in.TaxRate == "" {
		add("tax_rate", "la tasa de impuesto es requerida")
	} else if _, err := strconv.ParseFloat(in.TaxRate, 64); err != nil {
		add("tax_rate", "la tasa de impuesto debe ser numérica")
	}
	if !entity.SupportedCurrencies[in.Currency] {
		add("currency", "moneda no soportada")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
