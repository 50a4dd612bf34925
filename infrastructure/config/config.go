package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server configuration (local development server only)
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion         string
	CustomerTable     string
	EmailIndexName    string // GSI - lookups by email
	UsernameIndexName string // GSI - lookups by username

	// Cognito configuration
	UserPoolID string
	ClientID   string

	// Offline mode redirects the DynamoDB client to a local endpoint
	IsOffline       bool
	OfflineEndpoint string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":3000"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		CustomerTable:     getEnv("DYNAMODB_CUSTOMER_TABLE", "customers"),
		EmailIndexName:    getEnv("EMAIL_INDEX_NAME", "EmailIndex"),
		UsernameIndexName: getEnv("USERNAME_INDEX_NAME", "UsernameIndex"),

		UserPoolID: getEnv("USER_POOL_ID", ""),
		ClientID:   getEnv("CLIENT_ID", ""),

		IsOffline:       getEnvBool("IS_OFFLINE", false),
		OfflineEndpoint: getEnv("OFFLINE_ENDPOINT", "http://localhost:8000"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.CustomerTable == "" {
		return fmt.Errorf("DYNAMODB_CUSTOMER_TABLE is required")
	}
	if c.Environment == "production" {
		if c.UserPoolID == "" {
			return fmt.Errorf("USER_POOL_ID is required in production")
		}
		if c.ClientID == "" {
			return fmt.Errorf("CLIENT_ID is required in production")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
