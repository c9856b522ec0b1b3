package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewAppConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewAppConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/talenthub")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestNewAppConfig_ParsesOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/talenthub")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://rh.example.com, https://admin.example.com")

	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://rh.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestNewAppConfig_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/talenthub")
	t.Setenv("PORT", "not-a-port")

	_, err := NewAppConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("default expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("rejects zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4") // MinCost keeps the test fast

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("s3nha-forte")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("s3nha-forte", hash))
	assert.False(t, cfg.VerifyPassword("senha-errada", hash))
}

func TestNewPasswordConfig_RejectsOutOfRangeCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "31")
	_, err := NewPasswordConfig()
	assert.Error(t, err)
}
