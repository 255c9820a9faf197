package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID   = "user_id"
	LocalTenantID = "tenant_id"
	LocalRoleID   = "role_id"
)

// SessionCookie nombre de la cookie de sesión que lee el guard de páginas.
const SessionCookie = "session"

// sessionToken extrae el token del header Authorization (Bearer) o, en su
// defecto, de la cookie de sesión. Devuelve "" si no hay ninguno.
func sessionToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(SessionCookie)
}

// AuthMiddleware valida el JWT (Bearer o cookie) y extrae UserID, TenantID
// y RoleID a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := sessionToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		userID, tenantID, roleID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalTenantID, tenantID)
		c.Locals(LocalRoleID, roleID)
		return c.Next()
	}
}

// RequireTenant exige que el token traiga tenant: los endpoints del negocio
// (dashboard, ventas) no tienen sentido para un usuario sin onboarding.
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTenantID(c) == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_TENANT", Message: "completa el onboarding primero"})
		}
		return c.Next()
	}
}

// RequireTenantless rechaza tokens que ya traen tenant: el onboarding es
// una operación de una sola vez y no debe crear un segundo negocio ni
// revincular al usuario en silencio.
func RequireTenantless() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTenantID(c) != "" {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ONBOARDED", Message: "el usuario ya tiene un negocio"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTenantID devuelve el TenantID del contexto (después del middleware de auth).
func GetTenantID(c *fiber.Ctx) string {
	v := c.Locals(LocalTenantID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoleID devuelve el RoleID del contexto (después del middleware de auth).
func GetRoleID(c *fiber.Ctx) string {
	v := c.Locals(LocalRoleID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
