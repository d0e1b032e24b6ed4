package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "secreto-de-prueba"

func TestGenerateYParse(t *testing.T) {
	token, err := Generate(secret, 42, "staff", 7, "warehouse-management", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, deptID, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "staff", role)
	assert.Equal(t, int64(7), deptID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate(secret, 1, "manager", 0, "warehouse-management", 60)
	require.NoError(t, err)

	_, _, _, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	token, err := Generate(secret, 1, "manager", 0, "warehouse-management", -5)
	require.NoError(t, err)

	_, _, _, err = Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", 1, "manager", 0, "warehouse-management", 60)
	assert.Error(t, err)

	_, _, _, err = Parse("", "lo-que-sea")
	assert.Error(t, err)
}
