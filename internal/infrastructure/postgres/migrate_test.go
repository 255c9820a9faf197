package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LinkTenant hace upsert con solo (id, tenant_id, role_id): toda columna
// NOT NULL restante de users necesita DEFAULT para que la creación perezosa
// del perfil durante el onboarding sea una fila válida.
func TestEsquemaUsersPermitePerfilPerezoso(t *testing.T) {
	raw, err := migrations.ReadFile("migrations/00001_init.sql")
	require.NoError(t, err)
	ddl := string(raw)

	assert.Contains(t, ddl, "password_hash TEXT NOT NULL DEFAULT ''")
	assert.Contains(t, ddl, "email         TEXT NOT NULL DEFAULT ''")
	// El email vacío del perfil perezoso no debe chocar con la unicidad.
	assert.Contains(t, ddl, "CREATE UNIQUE INDEX users_email_idx ON users (email) WHERE email <> ''")
}

func TestMigracionesEmbebidas(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "00001_init.sql", entries[0].Name())
}
