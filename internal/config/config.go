package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Database client selectors accepted in DATABASE_CLIENT.
const (
	ClientSQLite   = "sqlite3"
	ClientPostgres = "pg"
)

type Config struct {
	Env            string
	HTTPPort       string
	DatabaseClient string
	DatabaseURL    string
	RateRPS        int
}

// Load reads an optional .env file, then the environment, and fails fast on
// anything the process cannot start with.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:            get("APP_ENV", "dev"),
		HTTPPort:       get("HTTP_PORT", "3333"),
		DatabaseClient: get("DATABASE_CLIENT", ClientSQLite),
		DatabaseURL:    get("DATABASE_URL", "./db/app.db"),
	}

	if cfg.DatabaseClient != ClientSQLite && cfg.DatabaseClient != ClientPostgres {
		return Config{}, fmt.Errorf("DATABASE_CLIENT must be %q or %q, got %q", ClientSQLite, ClientPostgres, cfg.DatabaseClient)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return Config{}, fmt.Errorf("HTTP_PORT must be a number, got %q", cfg.HTTPPort)
	}

	rps, err := strconv.Atoi(get("RATE_RPS", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("RATE_RPS must be a number, got %q", os.Getenv("RATE_RPS"))
	}
	cfg.RateRPS = rps

	return cfg, nil
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
