package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// ID strategies
const (
	IDStrategyTime = "time"
	IDStrategyUUID = "uuid"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Storage configuration
	StorageBackend string
	StorageKey     string
	StorageDir     string
	SQLitePath     string
	IDStrategy     string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// S3 configuration
	S3Bucket  string
	S3Prefix  string
	AWSRegion string

	LogLevel string
}

// LoadConfig creates a new Config from environment variables, reading
// credentials from Docker secrets when the variables are unset.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Env: env}

	cfg.ServerHost = getEnv("SERVER_HOST", "localhost")
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://frontend:5173"))

	cfg.StorageBackend = strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile))
	cfg.StorageKey = getEnv("STORAGE_KEY", "recipes")
	cfg.StorageDir = getEnv("STORAGE_DIR", "data")
	cfg.SQLitePath = getEnv("SQLITE_PATH", filepath.Join(cfg.StorageDir, "recipes.db"))
	cfg.IDStrategy = strings.ToLower(getEnv("ID_STRATEGY", IDStrategyTime))

	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnvOrSecret("DB_USER", "db_user")
	cfg.DBPassword = getEnvOrSecret("DB_PASSWORD", "db_password")
	cfg.DBName = getEnv("DB_NAME", "tarif")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")

	cfg.RedisURL = getEnvOrSecret("REDIS_URL", "redis_url")
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = getEnvOrSecret("REDIS_PASSWORD", "redis_password")
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	cfg.S3Bucket = os.Getenv("S3_BUCKET_NAME")
	cfg.S3Prefix = os.Getenv("S3_PREFIX")
	cfg.AWSRegion = os.Getenv("AWS_REGION")

	defaultLevel := "debug"
	if env == Production {
		defaultLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", defaultLevel))

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds the connection string for the postgres backend
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getEnvOrSecret prefers the environment variable and falls back to the
// Docker secret file of the same purpose.
func getEnvOrSecret(key, secret string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return readSecret(secret)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
