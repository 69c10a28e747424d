// Package config loads runtime settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting the analyses need.
type Config struct {
	// DatasetPath points at the housing sales CSV snapshot.
	DatasetPath string
	// GISDir contains the SCHOOL_SITES and PARKS shapefile directories.
	GISDir string
	// ShortlistPath is where selected candidates are persisted.
	ShortlistPath string

	// Source selects the loader: "csv" (default) or "oracle".
	Source string

	// Oracle connection settings, used when Source is "oracle".
	DBHost           string
	DBPort           string
	DBService        string
	DBUsername       string
	DBPassword       string
	DBWalletLocation string

	LogLevel slog.Level
}

// Load reads the environment, consulting .env first. Missing keys fall back
// to defaults suitable for running from the repository root.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatasetPath:   getEnvOrDefault("DATASET_PATH", filepath.Join("data", "kc_house_data.csv")),
		GISDir:        getEnvOrDefault("GIS_DIR", "data"),
		ShortlistPath: getEnvOrDefault("SHORTLIST_PATH", filepath.Join("data", "shortlist.csv")),

		Source: strings.ToLower(getEnvOrDefault("DATA_SOURCE", "csv")),

		DBHost:           getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:           getEnvOrDefault("DB_PORT", "1521"),
		DBService:        getEnvOrDefault("DB_SERVICE", "XE"),
		DBUsername:       getEnvOrDefault("DB_USERNAME", ""),
		DBPassword:       getEnvOrDefault("DB_PASSWORD", ""),
		DBWalletLocation: getEnvOrDefault("DB_WALLET_LOCATION", ""),

		LogLevel: parseLevel(getEnvOrDefault("LOG_LEVEL", "info")),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
