// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPPort    string
	DataDir     string // Directory for the SQLite database file
	DBHost      string // When set, PostgreSQL is used instead of SQLite
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	CORSOrigins string
}

// Load reads the configuration, taking a .env file into account if one
// exists next to the binary.
func Load() Config {
	// A missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DataDir:     getEnv("DATA_DIR", "data"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
	}

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, all requests are treated as unauthenticated")
	}

	return cfg
}

// PostgresDSN returns the connection string for the PostgreSQL driver.
// Only meaningful when DBHost is set.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
