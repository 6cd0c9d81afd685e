// Package config reads the server configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrJWTSecretMissing is returned when no token signing secret is configured.
var ErrJWTSecretMissing = errors.New("JWT_SECRET must be set")

// Config holds all runtime settings for the backend.
type Config struct {
	// Address the HTTP server binds to, e.g. ":8080".
	Addr string

	// Path to the sqlite database file.
	DBFile string

	// Secret used to sign session tokens.
	JWTSecret string

	// Comma separated list of allowed CORS origins. Empty disables CORS.
	CORSOrigins string

	// API key for the advisory text service. Empty disables it.
	OpenAIKey string

	// Log output format, "human" or "json".
	LogFormat string

	// Enables the pprof endpoints under /debug/pprof.
	EnablePprof bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        ":" + getEnv("PORT", "8080"),
		DBFile:      getEnv("DB_FILE", "data/gorm.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}

	if v, err := strconv.ParseBool(os.Getenv("ENABLE_PPROF")); err == nil {
		cfg.EnablePprof = v
	}

	if cfg.JWTSecret == "" {
		return cfg, ErrJWTSecretMissing
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
