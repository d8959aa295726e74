package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbgescom/supermarche-api/pkg/token"
)

func TestSignParse_RoundTrip(t *testing.T) {
	signed, err := token.Sign("secret", "sess-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	sessionID, err := token.Parse("secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sessionID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	signed, err := token.Sign("secret", "sess-123", time.Hour)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret", signed)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	signed, err := token.Sign("secret", "sess-123", -time.Minute)
	require.NoError(t, err)

	_, err = token.Parse("secret", signed)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, err := token.Parse("secret", "no-es-un-jwt")
	assert.Error(t, err)
}

func TestSign_SecretVacio(t *testing.T) {
	_, err := token.Sign("", "sess-123", time.Hour)
	assert.Error(t, err)
}

func TestParse_SecretVacio(t *testing.T) {
	signed, err := token.Sign("secret", "sess-123", time.Hour)
	require.NoError(t, err)

	_, err = token.Parse("", signed)
	assert.Error(t, err)
}
