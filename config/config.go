package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL string
	DBName      string
	DBPort      string
	DBUser      string
	GoEnv       string
	LogLevel    string
}

var appConfig *Config

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// Environment variables may be set directly by the shell,
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBName:      getEnv("DB_NAME", ""),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", ""),
		GoEnv:       getEnv("GO_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	appConfig = config
	return config, nil
}

// GetConfig returns the most recently loaded configuration.
func GetConfig() *Config {
	return appConfig
}

// Validate checks that enough configuration is present to reach a database:
// either a full DATABASE_URL or the name/port/user triple.
func (c *Config) Validate() error {
	if c.DatabaseURL != "" {
		return nil
	}
	if c.DBName == "" || c.DBUser == "" {
		return fmt.Errorf("DATABASE_URL or DB_NAME and DB_USER are required")
	}
	return nil
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
