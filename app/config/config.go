package config

import (
	"fmt"
	"os"
)

// Settings holds everything the serve command needs. Values come straight
// from the environment; there is no config file.
type Settings struct {
	ListenAddr   string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	SecretKey    string
	RevocationDB string
}

// Load reads settings from the environment, applying local-development
// defaults for everything except the signing secret.
func Load() Settings {
	return Settings{
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   getenv("DB_PASSWORD", "postgres"),
		DBName:       getenv("DB_NAME", "simpleblog"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		RevocationDB: os.Getenv("REVOCATION_DB"),
	}
}

// DSN returns the Postgres connection string.
func (s Settings) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		s.DBHost, s.DBPort, s.DBUser, s.DBPassword, s.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
