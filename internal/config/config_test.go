package config

import (
	"testing"
	"time"

	apperrors "brain-backend/internal/errors"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:      "development",
		StorageDriver:    "postgres",
		DatabaseName:     "brain",
		JWTSecret:        defaultJWTSecret,
		JWTTTL:           time.Hour,
		ShareTokenLength: MinShareTokenLength,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("default secret rejected in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.True(t, apperrors.IsConfiguration(err))

		cfg.JWTSecret = "a-real-secret"
		assert.NoError(t, validate(cfg))
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.StorageDriver = "mongo"
		assert.Error(t, validate(cfg))
	})

	t.Run("memory driver needs no database", func(t *testing.T) {
		cfg := validConfig()
		cfg.StorageDriver = "memory"
		cfg.DatabaseName = ""
		assert.NoError(t, validate(cfg))
	})

	t.Run("short share token rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.ShareTokenLength = 6
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SHARE_TOKEN_LENGTH")
	})

	t.Run("non-positive ttl rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTTTL = 0
		assert.Error(t, validate(cfg))
	})
}

func TestLoad_InvalidConfigIsConfigurationError(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "brain",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5433/brain?sslmode=disable", buildDatabaseURL(cfg))
}

func TestLoad_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PORT", "4000")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("SHARE_TOKEN_LENGTH", "16")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.True(t, cfg.UsesMemoryStorage())
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 16, cfg.ShareTokenLength)
	assert.Equal(t, "brain-backend", cfg.JWTIssuer)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Contains(t, cfg.DatabaseURL, "/brain?sslmode=disable")
}
