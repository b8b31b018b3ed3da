package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frontino-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "op@frontino.com", "OPERATOR", "frontino-api-test", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "op@frontino.com", claims.Email)
	assert.Equal(t, "OPERATOR", claims.Rol)
	assert.Equal(t, "frontino-api-test", claims.Issuer)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "op@frontino.com", "OPERATOR", "frontino-api-test", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "op@frontino.com", "OPERATOR", "frontino-api-test", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "op@frontino.com", "OPERATOR", "frontino-api-test", 60)
	assert.Error(t, err)
}
