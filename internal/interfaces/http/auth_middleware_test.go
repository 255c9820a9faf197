package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/pos-cloud/internal/interfaces/http"
)

// buildAuthApp construye una app Fiber mínima con AuthMiddleware y un
// handler que devuelve los locals extraídos del token.
func buildAuthApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"tenant_id": apphttp.GetTenantID(c),
			"role_id":   apphttp.GetRoleID(c),
		})
	})
	app.Get("/me", handlers...)
	return app
}

func TestAuthMiddleware_BearerExtraeClaims(t *testing.T) {
	app := buildAuthApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testTenantID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testTenantID, body["tenant_id"])
	assert.Equal(t, testRoleID, body["role_id"])
}

// La cookie de sesión vale igual que el Bearer: el guard de páginas y la
// API comparten la misma sesión.
func TestAuthMiddleware_CookieDeSesion(t *testing.T) {
	app := buildAuthApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenFor(t, testTenantID)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildAuthApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildAuthApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// RequireTenant bloquea tokens sin tenant (usuario a medio onboarding).
func TestRequireTenant_SinTenant_Retorna403(t *testing.T) {
	app := buildAuthApp(apphttp.RequireTenant())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, ""))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_TENANT")
}

func TestRequireTenant_ConTenant_Pasa(t *testing.T) {
	app := buildAuthApp(apphttp.RequireTenant())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testTenantID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// RequireTenantless protege el onboarding: un usuario que ya tiene negocio
// no debe poder crear otro ni revincularse en silencio.
func TestRequireTenantless_ConTenant_Retorna409(t *testing.T) {
	app := buildAuthApp(apphttp.RequireTenantless())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testTenantID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ALREADY_ONBOARDED")
}

func TestRequireTenantless_SinTenant_Pasa(t *testing.T) {
	app := buildAuthApp(apphttp.RequireTenantless())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, ""))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
