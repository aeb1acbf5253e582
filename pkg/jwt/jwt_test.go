package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scisp/conteos-api/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate("secreto", 15, "cca", "conteos-api", 30)
	require.NoError(t, err)

	userID, rol, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, int64(15), userID)
	assert.Equal(t, "cca", rol)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	token, err := jwt.Generate("secreto", 15, "cca", "conteos-api", 30)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("secreto", 15, "cca", "conteos-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", 15, "cca", "conteos-api", 30)
	assert.Error(t, err)
}
