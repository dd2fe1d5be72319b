package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := GenerateSessionToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	_, err := ParseSessionToken("not-a-jwt")
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret-one")
	token, err := GenerateSessionToken(7)
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "secret-two")
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}
