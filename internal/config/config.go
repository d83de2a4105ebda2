// Package config loads application configuration from environment
// variables. A .env file is honored when present so local development
// matches the deployed environment shape.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The admin credential must be supplied as
// either ADMIN_PASSWORD_HASH (bcrypt) or plaintext ADMIN_PASSWORD.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	AdminUser     string // fixed admin username
	AdminPass     string // admin password, plaintext (ignored when hash set)
	AdminPassHash string // bcrypt hash of the admin password
	StaticDir     string // directory holding the storefront/admin pages
}

// Load reads configuration from the environment. Required variables are
// enforced by must() and missing values cause the program to exit with
// a fatal log message.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8000"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		AdminUser:     must("ADMIN_USER"),
		AdminPass:     os.Getenv("ADMIN_PASSWORD"),
		AdminPassHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		StaticDir:     getenv("STATIC_DIR", "web"),
	}
	if cfg.AdminPass == "" && cfg.AdminPassHash == "" {
		log.Fatal("set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
