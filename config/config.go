package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// CORS configuration
	AllowedOrigins []string

	// Classifier thresholds. The bands are deployment configuration, not
	// constants of the engine.
	CalorieLowerRatio     float64
	CalorieUpperRatio     float64
	ExerciseLowCalories   float64
	ExerciseHighCalories  float64
	ExerciseFairBandRatio float64
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to development defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "vitalog"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		RedisURL:      getEnv("REDIS_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),

		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),

		CalorieLowerRatio:     getEnvFloat("CALORIE_LOWER_RATIO", 0.9),
		CalorieUpperRatio:     getEnvFloat("CALORIE_UPPER_RATIO", 1.1),
		ExerciseLowCalories:   getEnvFloat("EXERCISE_LOW_CALORIES", 200),
		ExerciseHighCalories:  getEnvFloat("EXERCISE_HIGH_CALORIES", 800),
		ExerciseFairBandRatio: getEnvFloat("EXERCISE_FAIR_BAND_RATIO", 0.5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values are usable.
func (c *Config) Validate() error {
	var errs []string

	if IsProduction() && c.JWTSecret == "your-secret-key" {
		errs = append(errs, "JWT_SECRET must be set in production")
	}
	if c.CalorieLowerRatio <= 0 || c.CalorieUpperRatio < c.CalorieLowerRatio {
		errs = append(errs, "calorie ratio band is invalid")
	}
	if c.ExerciseLowCalories < 0 || c.ExerciseHighCalories < c.ExerciseLowCalories {
		errs = append(errs, "exercise calorie band is invalid")
	}
	if c.ExerciseFairBandRatio < 0 || c.ExerciseFairBandRatio > 1 {
		errs = append(errs, "EXERCISE_FAIR_BAND_RATIO must be in [0,1]")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
