package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pos-cloud/internal/application/auth"
	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/application/onboarding"
	"github.com/tu-usuario/pos-cloud/internal/domain"
)

// OnboardingHandler maneja el bootstrap del tenant.
type OnboardingHandler struct {
	bootstrapUC *onboarding.BootstrapUseCase
	authUC      *auth.AuthUseCase
}

// NewOnboardingHandler construye el handler de onboarding.
func NewOnboardingHandler(bootstrapUC *onboarding.BootstrapUseCase, authUC *auth.AuthUseCase) *OnboardingHandler {
	return &OnboardingHandler{bootstrapUC: bootstrapUC, authUC: authUC}
}

// Bootstrap godoc
// @Summary      Crear el negocio del usuario (onboarding)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessProfile  true  "perfil del negocio"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/onboarding [post]
func (h *OnboardingHandler) Bootstrap(c *fiber.Ctx) error {
	userID := GetUserID(c)

	// El middleware ya rechaza tokens con tenant, pero un token emitido
	// antes de completar el bootstrap sigue siendo tenantless: la fila del
	// usuario es la fuente de verdad.
	if user, err := h.authUC.CurrentUser(userID); err == nil && user.HasTenant() {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ONBOARDED", Message: "el usuario ya tiene un negocio"})
	}

	var in dto.BusinessProfile
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.bootstrapUC.Bootstrap(userID, in); err != nil {
		var verr *onboarding.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Code: "VALIDATION", Fields: verr.Fields,
			})
		case errors.Is(err, domain.ErrSlugTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "SLUG_TAKEN", Message: "esta URL ya está en uso, elige otra",
			})
		default:
			// Fallo a mitad del bootstrap: el paso queda identificado por el
			// sentinel envuelto y el usuario puede reintentar con el mismo slug
			// libre de nuevo o no, según hasta dónde llegó la secuencia.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: bootstrapErrorCode(err), Message: err.Error(),
			})
		}
	}

	// El token de la sesión anterior no trae tenant: re-emitir con los
	// claims nuevos para que el guard deje pasar al dashboard.
	session, err := h.authUC.RefreshSession(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setSessionCookie(c, session.Token)
	return c.Status(fiber.StatusCreated).JSON(session)
}

// bootstrapErrorCode mapea el sentinel del paso fallido a un código estable
// para el cliente.
func bootstrapErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrTenantCreate):
		return "TENANT_CREATE_FAILED"
	case errors.Is(err, domain.ErrRoleCreate):
		return "ROLE_CREATE_FAILED"
	case errors.Is(err, domain.ErrLocationCreate):
		return "LOCATION_CREATE_FAILED"
	case errors.Is(err, domain.ErrUserLink):
		return "USER_LINK_FAILED"
	case errors.Is(err, domain.ErrUserLocation):
		return "USER_LOCATION_FAILED"
	}
	return "INTERNAL"
}
