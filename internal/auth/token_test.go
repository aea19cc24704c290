package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-directory/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.GenerateToken("session-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	sessionID, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)

	token, _, err := tm.GenerateToken("session-123")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Millisecond)

	token, _, err := tm.GenerateToken("session-123")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}
