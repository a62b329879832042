package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// devJWTSecret is the development fallback signing key, used only when
// SIKLO_JWT_SECRET is unset. Anyone running this in production without
// setting a real secret gets a loud warning at startup.
const devJWTSecret = "siklo_dev_secret"

// Config holds the server configuration, read from the environment.
type Config struct {
	Addr       string
	DBPath     string
	UploadsDir string
	LogPath    string
	JWTSecret  string
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	jwtSecret := getEnv("SIKLO_JWT_SECRET", "")
	if jwtSecret == "" {
		jwtSecret = devJWTSecret
		slog.Warn("SIKLO_JWT_SECRET not set, using built-in development secret")
	}

	return &Config{
		Addr:       getEnv("SIKLO_ADDR", ":8080"),
		DBPath:     getEnv("SIKLO_DB", "siklo.sqlite3"),
		UploadsDir: getEnv("SIKLO_UPLOADS", "uploads"),
		LogPath:    getEnv("SIKLO_LOG", ""),
		JWTSecret:  jwtSecret,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
