package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment the API runs with.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	Env          string
	DBTimeout    time.Duration
}

// LoadEnv loads a .env file when present. Missing files are not an error,
// the process falls back to the system environment.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment. DATABASE_URL may be
// empty, in which case the API runs without a store.
func Load() Config {
	timeout, err := time.ParseDuration(GetEnv("DB_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
	}

	return Config{
		Port:         GetEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: GetEnv("DATABASE_NAME", "app"),
		Env:          GetEnv("APP_ENV", "development"),
		DBTimeout:    timeout,
	}
}

// HasDatabaseURL reports whether a connection string was supplied.
func (c Config) HasDatabaseURL() bool {
	return c.DatabaseURL != ""
}
