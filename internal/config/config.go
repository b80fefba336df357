// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"coreadmin-service/internal/db"
	"coreadmin-service/internal/pkg/token"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Database
	Postgres db.PostgresConfig

	// Redis
	Redis db.RedisConfig

	// Auth
	JWT           token.Config
	RSAPrivateKey string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		Postgres: db.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PWD", ""),
			Database: getEnv("DB_NAME", "coreadmin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		Redis: db.RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASS", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			PoolSize: getEnvInt("REDIS_POOL_SIZE", 10),
		},

		JWT: token.Config{
			Secret: getEnv("AUTH_JWT_SECRET", ""),
			TTL:    time.Duration(getEnvInt("AUTH_JWT_TTL_HOURS", 24)) * time.Hour,
		},
		RSAPrivateKey: getEnv("AUTH_RSA_PRIVATE_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
