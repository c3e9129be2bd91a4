package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	appmongo "github.com/amanabooks/storefront/internal/mongo"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	Mongo    appmongo.Config
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		// Walk up directories to find .env (max 2 parent directories)
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		Mongo: appmongo.Config{
			URI:               strings.TrimSpace(os.Getenv("MONGODB_URI")),
			Database:          getEnv("MONGODB_DB", "amana_bookstore"),
			BooksCollection:   getEnv("MONGODB_BOOKS_COLLECTION", "books"),
			ReviewsCollection: getEnv("MONGODB_REVIEWS_COLLECTION", "reviews"),
			CartCollection:    getEnv("MONGODB_CART_COLLECTION", "cart"),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// MongoConfigured reports whether a document store connection string
// was provided. Without one the server runs on the seeded in-memory
// catalog.
func (c *Config) MongoConfigured() bool {
	return c.Mongo.URI != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
