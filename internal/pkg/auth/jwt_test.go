package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/config"
)

func testManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "storefront-gateway"},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: expiry,
		},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := testManager(time.Hour)

	token, err := manager.GenerateToken(42, "jane@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "user:42", claims.Subject)
	assert.True(t, claims.IsCustomer())
	assert.False(t, claims.IsSupplier())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testManager(time.Hour).GenerateToken(1, "a@b.com", "customer")
	require.NoError(t, err)

	other := NewJWTManager(&config.Config{
		JWT: config.JWTConfig{Secret: "different-secret", AccessTokenExpiry: time.Hour},
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	manager := testManager(-time.Minute)

	token, err := manager.GenerateToken(1, "a@b.com", "customer")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := testManager(time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestClaims_RoleChecksAreCaseInsensitive(t *testing.T) {
	claims := &Claims{Role: "Supplier"}
	assert.True(t, claims.IsSupplier())
	assert.False(t, claims.IsCustomer())
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "abc123", ExtractTokenFromHeader("bearer abc123"))
	assert.Empty(t, ExtractTokenFromHeader("abc123"))
	assert.Empty(t, ExtractTokenFromHeader(""))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc123"))
}
