package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// backendRequirements lists the settings each storage backend cannot run without
var backendRequirements = map[string][]string{
	BackendMemory:   {"STORAGE_KEY"},
	BackendFile:     {"STORAGE_KEY", "STORAGE_DIR"},
	BackendSQLite:   {"STORAGE_KEY", "SQLITE_PATH"},
	BackendPostgres: {"STORAGE_KEY", "DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"},
	BackendRedis:    {"STORAGE_KEY", "REDIS_URL|REDIS_HOST"},
	BackendS3:       {"STORAGE_KEY", "S3_BUCKET_NAME"},
}

// ValidateConfig checks the configuration against the selected backend's requirements
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	reqs, ok := backendRequirements[cfg.StorageBackend]
	if !ok {
		errs = append(errs, ValidationError{
			Field:   "STORAGE_BACKEND",
			Message: fmt.Sprintf("unknown backend %q", cfg.StorageBackend),
		})
	}
	for _, field := range reqs {
		if !hasValue(cfg, field) {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	switch cfg.IDStrategy {
	case IDStrategyTime, IDStrategyUUID:
	default:
		errs = append(errs, ValidationError{
			Field:   "ID_STRATEGY",
			Message: fmt.Sprintf("must be %q or %q", IDStrategyTime, IDStrategyUUID),
		})
	}

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "is required"})
	}

	// Production must not fall back to the throwaway memory store
	if cfg.Env == Production && cfg.StorageBackend == BackendMemory {
		errs = append(errs, ValidationError{
			Field:   "STORAGE_BACKEND",
			Message: "memory backend is not allowed in production",
		})
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("%s", strings.Join(msgs, "\n"))
	}

	return nil
}

// hasValue resolves a requirement name, where "A|B" means either is enough
func hasValue(cfg *Config, field string) bool {
	for _, name := range strings.Split(field, "|") {
		if fieldValue(cfg, name) != "" {
			return true
		}
	}
	return false
}

func fieldValue(cfg *Config, name string) string {
	switch name {
	case "STORAGE_KEY":
		return cfg.StorageKey
	case "STORAGE_DIR":
		return cfg.StorageDir
	case "SQLITE_PATH":
		return cfg.SQLitePath
	case "DB_HOST":
		return cfg.DBHost
	case "DB_PORT":
		return cfg.DBPort
	case "DB_USER":
		return cfg.DBUser
	case "DB_NAME":
		return cfg.DBName
	case "REDIS_URL":
		return cfg.RedisURL
	case "REDIS_HOST":
		return cfg.RedisHost
	case "S3_BUCKET_NAME":
		return cfg.S3Bucket
	}
	return ""
}
