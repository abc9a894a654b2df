package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerHost  string
	ServerPort  string
	Environment string

	// StoreBackend selects the key-value persistence surface the
	// activity log lives on: "redis" (default) or "postgres".
	StoreBackend string
	RedisURL     string
	DatabaseURL  string

	JWTSecret      string
	AccessTokenTTL time.Duration

	SeedOnStart bool

	LogLevel  string
	LogFormat string
}

const (
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

var (
	ErrMissingJWTSecret    = errors.New("JWT_SECRET is required")
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required when STORE_BACKEND=postgres")
	ErrInvalidStoreBackend = errors.New("STORE_BACKEND must be redis or postgres")
	ErrInvalidTokenTTL     = errors.New("invalid token TTL format")
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:   getEnvOrDefault("SERVER_HOST", "localhost"),
		ServerPort:   getEnvOrDefault("SERVER_PORT", "8080"),
		Environment:  getEnvOrDefault("ENV", "development"),
		StoreBackend: getEnvOrDefault("STORE_BACKEND", StoreBackendRedis),
		RedisURL:     getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SeedOnStart:  getEnvOrDefaultBool("SEED_ON_START", true),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.StoreBackend != StoreBackendRedis && cfg.StoreBackend != StoreBackendPostgres {
		return nil, ErrInvalidStoreBackend
	}

	if cfg.StoreBackend == StoreBackendPostgres && cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	accessTokenTTL, err := parseTokenTTL(getEnvOrDefault("JWT_ACCESS_TOKEN_TTL", "900"))
	if err != nil {
		return nil, ErrInvalidTokenTTL
	}
	cfg.AccessTokenTTL = accessTokenTTL

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func parseTokenTTL(value string) (time.Duration, error) {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
