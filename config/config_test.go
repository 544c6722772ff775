package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("JWT_TTL", "")
		t.Setenv("BCRYPT_COST", "")

		cfg := Load()
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "mestodb", cfg.MongoDatabase)
		assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 10, cfg.BcryptCost)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("JWT_TTL", "1h")
		t.Setenv("BCRYPT_COST", "12")
		t.Setenv("HTTP_LOG_ENABLED", "true")

		cfg := Load()
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, time.Hour, cfg.JWTTTL)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.True(t, cfg.HTTPLogEnabled)
	})

	t.Run("Invalid values fall back", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "lots")
		t.Setenv("JWT_TTL", "forever")

		cfg := Load()
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	})
}

func TestTokenSecret(t *testing.T) {
	t.Run("configured secret wins", func(t *testing.T) {
		cfg := &Config{Env: "production", JWTSecret: "s3cr3t"}
		secret, fallback, err := cfg.TokenSecret()
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", secret)
		assert.False(t, fallback)
	})

	t.Run("production refuses fallback", func(t *testing.T) {
		cfg := &Config{Env: "production"}
		_, _, err := cfg.TokenSecret()
		assert.ErrorIs(t, err, ErrMissingTokenSecret)
	})

	t.Run("development uses fallback", func(t *testing.T) {
		cfg := &Config{Env: "development"}
		secret, fallback, err := cfg.TokenSecret()
		require.NoError(t, err)
		assert.NotEmpty(t, secret)
		assert.True(t, fallback)
	})
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example ,,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	empty := &Config{}
	assert.Empty(t, empty.CORSOrigins())
}
