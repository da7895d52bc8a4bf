package config

import (
	"os"
)

type Config struct {
	ServerAddr  string
	DatabaseURL string
	AssetsDir   string
	CORSOrigins string
}

// Load reads configuration from the environment. DATABASE_URL has no
// default; main refuses to start without it.
func Load() *Config {
	return &Config{
		ServerAddr:  ":" + getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AssetsDir:   getEnv("ASSETS_DIR", "./assets"),
		CORSOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
