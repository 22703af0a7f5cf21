// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all service configuration.
type Config struct {
	Port              int
	CORSAllowedOrigin string
	Reports           ReportsConfig
	DynamoDB          DynamoDBConfig
}

// ReportsConfig controls storage of finished reports.
type ReportsConfig struct {
	Persist   bool
	TableName string
}

// DynamoDBConfig locates the DynamoDB endpoint. Local DynamoDB does not
// validate credentials but the AWS SDK still requires some.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads configuration from environment variables. A .env file, when
// present, is loaded beforehand by godotenv/autoload in main.
func Load() (*Config, error) {
	endpoint := getEnv("DYNAMODB_ENDPOINT", "")

	cfg := &Config{
		Port:              getEnvInt("PORT", 8080),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		Reports: ReportsConfig{
			// Without an explicit endpoint, storage is opt-in.
			Persist:   getEnvBool("REPORTS_PERSIST", endpoint != ""),
			TableName: getEnv("REPORTS_TABLE", "financial_reports"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getEnvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        endpoint,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.CORSAllowedOrigin == "" {
		return fmt.Errorf("CORS_ALLOWED_ORIGIN cannot be empty")
	}
	if c.Reports.Persist && c.Reports.TableName == "" {
		return fmt.Errorf("REPORTS_TABLE cannot be empty when REPORTS_PERSIST is enabled")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

// getEnvDefault also falls back when the variable is set but empty.
func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
