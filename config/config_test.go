package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_NAME", "vitalog_test")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("CALORIE_LOWER_RATIO", "0.85")
	defer func() {
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_PORT")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("CALORIE_LOWER_RATIO")
	}()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "vitalog_test", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 0.85, cfg.CalorieLowerRatio)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"JWT_SECRET", "REDIS_URL", "CALORIE_LOWER_RATIO", "CALORIE_UPPER_RATIO",
	} {
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "vitalog", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 0.9, cfg.CalorieLowerRatio)
	assert.Equal(t, 1.1, cfg.CalorieUpperRatio)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestValidateRejectsInvertedBands(t *testing.T) {
	os.Setenv("CALORIE_LOWER_RATIO", "1.5")
	os.Setenv("CALORIE_UPPER_RATIO", "1.1")
	defer func() {
		os.Unsetenv("CALORIE_LOWER_RATIO")
		os.Unsetenv("CALORIE_UPPER_RATIO")
	}()

	_, err := LoadConfig()
	assert.Error(t, err)
}
