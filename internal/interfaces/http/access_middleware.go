package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pos-cloud/internal/application/auth"
	"github.com/tu-usuario/pos-cloud/internal/domain/access"
	"github.com/tu-usuario/pos-cloud/pkg/jwt"
)

// AccessGuard aplica la decisión de enrutamiento de páginas: resuelve la
// sesión desde la cookie (o Bearer), consulta el perfil del usuario y
// ejecuta el redirect que access.Decide indique.
//
// Un token inválido o expirado cuenta como "sin sesión" (fail-closed hacia
// login). Un perfil inexistente o ilegible cuenta como "sin tenant": los
// usuarios nuevos llegan al onboarding, no a una página de error.
func AccessGuard(jwtSecret string, authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hasSession := false
		userState := access.UserState{}

		if tokenString := sessionToken(c); tokenString != "" {
			userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
			if err == nil {
				hasSession = true
				user, _ := authUC.CurrentUser(userID)
				userState.HasTenant = user.HasTenant()
			}
		}

		decision := access.Decide(c.Path(), hasSession, userState)
		if decision == access.Allow {
			return c.Next()
		}
		return c.Redirect(decision.Target(), fiber.StatusFound)
	}
}
