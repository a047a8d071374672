package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8000"

// Config holds the process settings read from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	LogLevel     string
}

// Load reads an optional .env file and then the environment.
func Load(envFile string) *Config {
	if err := godotenv.Load(envFile); err != nil {
		logrus.WithError(err).Warnf("could not load %s, using process environment", envFile)
	}

	return &Config{
		Port:         getEnv("PORT", defaultPort),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// DatabaseConfigured reports whether both the URI and the database name are set.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
