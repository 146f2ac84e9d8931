package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL is the TaskLite backend base URL (no trailing slash).
	APIBaseURL string
	// LogPath, when non-empty, enables file logging (the TUI owns the terminal,
	// so logs never go to stdout/stderr while it runs).
	LogPath string
}

func Load() Config {
	// Best-effort; absence of a .env file is the common case.
	_ = godotenv.Load()

	return Config{
		APIBaseURL: getEnv("TASKLITE_API_URL", "http://localhost:3000"),
		LogPath:    getEnv("TASKLITE_LOG", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
