// Package access implementa la decisión de enrutamiento que protege las
// páginas de la aplicación: a dónde va una petición según haya sesión y
// según el usuario tenga o no un tenant vinculado.
//
// Decide es una función pura sobre sus tres entradas; no consulta nada.
// El shell HTTP (interfaces/http) resuelve la sesión, busca el perfil del
// usuario y ejecuta el redirect que la decisión indique.
package access

import "strings"

// Decision resultado de evaluar una petición.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectOnboarding
	RedirectDashboard
)

// Destinos de los redirects.
const (
	LoginPath      = "/auth/login"
	OnboardingPath = "/onboarding"
	DashboardPath  = "/dashboard"
)

// Target devuelve la ruta destino del redirect; vacío para Allow.
func (d Decision) Target() string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case RedirectOnboarding:
		return OnboardingPath
	case RedirectDashboard:
		return DashboardPath
	}
	return ""
}

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectOnboarding:
		return "redirect-onboarding"
	case RedirectDashboard:
		return "redirect-dashboard"
	}
	return "unknown"
}

// protectedPrefixes páginas que requieren sesión y tenant.
var protectedPrefixes = []string{
	"/dashboard",
	"/pos",
	"/inventory",
	"/customers",
	"/suppliers",
	"/reports",
	"/settings",
}

// UserState lo mínimo que la decisión necesita saber del perfil. Un lookup
// fallido o sin filas se representa con HasTenant=false: los usuarios nuevos
// deben llegar al onboarding, nunca a una página de error.
type UserState struct {
	HasTenant bool
}

// IsAuthRoute true para las páginas de login/registro.
func IsAuthRoute(path string) bool {
	return strings.HasPrefix(path, "/auth")
}

// IsProtectedRoute true para las páginas que exigen sesión y tenant.
func IsProtectedRoute(path string) bool {
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// IsOnboardingRoute true para la página de onboarding.
func IsOnboardingRoute(path string) bool {
	return strings.HasPrefix(path, OnboardingPath)
}

// Decide evalúa las reglas en orden:
//
//  1. ruta de auth con sesión        → RedirectDashboard
//  2. ruta de auth sin sesión        → Allow
//  3. ruta protegida sin sesión      → RedirectLogin
//  4. ruta protegida sin tenant      → RedirectOnboarding
//  5. ruta protegida con tenant      → Allow
//  6. onboarding sin sesión          → RedirectLogin
//  7. onboarding con tenant          → RedirectDashboard (ya onboardeado)
//  8. onboarding sin tenant          → Allow
//  9. cualquier otra ruta (pública)  → Allow
func Decide(path string, hasSession bool, user UserState) Decision {
	switch {
	case IsAuthRoute(path):
		if hasSession {
			return RedirectDashboard
		}
		return Allow

	case IsProtectedRoute(path):
		if !hasSession {
			return RedirectLogin
		}
		if !user.HasTenant {
			return RedirectOnboarding
		}
		return Allow

	case IsOnboardingRoute(path):
		if !hasSession {
			return RedirectLogin
		}
		if user.HasTenant {
			return RedirectDashboard
		}
		return Allow
	}

	return Allow
}
