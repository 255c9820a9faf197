package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/pos-cloud/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testTenantID = "00000000-0000-0000-0000-000000000002"
	testRoleID   = "00000000-0000-0000-0000-000000000003"
	testIssuer   = "pos-cloud-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testTenantID, testRoleID, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, tenantID, roleID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testTenantID, tenantID)
	assert.Equal(t, testRoleID, roleID)
}

// Un usuario recién registrado viaja con tenant_id vacío; el token debe conservarlo así.
func TestGenerateAndParse_SinTenant(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "", testIssuer, 60)
	require.NoError(t, err)

	userID, tenantID, roleID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Empty(t, tenantID)
	assert.Empty(t, roleID)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, testTenantID, testRoleID, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testTenantID, testRoleID, testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testTenantID, testRoleID, testIssuer, 60)
	assert.Error(t, err)
}
