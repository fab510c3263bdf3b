package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateAccessToken(1, 7, "owner@gym.test", "admin", testSecret)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, 7, claims.GymID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, 7, "owner@gym.test", "admin", testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := GenerateAccessToken(1, 7, "a@b.c", "staff", "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)

	_, err = ValidateToken("whatever", "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestRefreshAccessToken(t *testing.T) {
	access, refresh, err := GenerateTokens(2, 9, "staff@gym.test", "staff", "access-secret", "refresh-secret")
	require.NoError(t, err)
	require.NotEmpty(t, access)

	newAccess, claims, err := RefreshAccessToken(refresh, "refresh-secret", "access-secret")
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.Equal(t, 9, claims.GymID)

	got, err := ValidateToken(newAccess, "access-secret")
	require.NoError(t, err)
	assert.Equal(t, "access", got.TokenType)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	access, err := GenerateAccessToken(2, 9, "staff@gym.test", "staff", testSecret)
	require.NoError(t, err)

	_, _, err = RefreshAccessToken(access, testSecret, testSecret)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}
