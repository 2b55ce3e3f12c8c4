package services

import (
	"testing"

	"github.com/Raphaon/LoveLanguage/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() *AuthService {
	store := storage.NewService(storage.NewMemoryStore())
	return NewAuthService(store, "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthService()

	result, err := auth.Register("lea@example.com", "motdepasse", "")
	require.NoError(t, err)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, "lea@example.com", result.Email)
	assert.Equal(t, "user", result.Role, "role defaults to user")

	_, err = auth.Register("lea@example.com", "autre", "")
	require.Error(t, err, "duplicate email must be rejected")

	pair, err := auth.Login("lea@example.com", "motdepasse")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newAuthService()

	_, err := auth.Register("lea@example.com", "motdepasse", "admin")
	require.NoError(t, err)

	_, err = auth.Login("lea@example.com", "faux")
	assert.EqualError(t, err, "invalid credentials")

	_, err = auth.Login("inconnu@example.com", "motdepasse")
	assert.EqualError(t, err, "invalid credentials")
}

func TestValidateToken(t *testing.T) {
	auth := newAuthService()

	_, err := auth.Register("lea@example.com", "motdepasse", "")
	require.NoError(t, err)
	pair, err := auth.Login("lea@example.com", "motdepasse")
	require.NoError(t, err)

	sub, err := auth.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "lea@example.com", sub)

	_, err = auth.ValidateToken(pair.RefreshToken)
	assert.Error(t, err, "refresh tokens must not pass access validation")

	_, err = auth.ValidateToken("not-a-token")
	assert.Error(t, err)

	other := NewAuthService(storage.NewService(storage.NewMemoryStore()), "other-secret")
	_, err = other.ValidateToken(pair.AccessToken)
	assert.Error(t, err, "tokens signed with another secret must fail")
}
