package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. It is loaded once at startup
// and passed explicitly into each component; nothing else reads the
// process environment.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	BucketName    string
	EventBusName  string

	// Presigned URL lifetime for uploads and downloads
	PresignExpiry time.Duration

	// Lambda configuration
	IsLambda bool

	// Authentication (local development only; in Lambda the gateway
	// authorizer supplies the identity)
	JWTSecret string
	JWTIssuer string

	// Logging and features
	LogLevel         string
	EnableMetrics    bool
	EnableTracing    bool
	MetricsNamespace string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "eu-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "mynotes"),
		BucketName:    getEnv("BUCKET_NAME", "mynotes-files"),
		EventBusName:  getEnv("EVENT_BUS_NAME", ""),

		PresignExpiry: time.Duration(getEnvInt("PRESIGN_EXPIRY_MINUTES", 15)) * time.Minute,

		IsLambda: os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "mynotes-backend"),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "MyNotes"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.DynamoDBTable == "" {
			return fmt.Errorf("TABLE_NAME is required")
		}
		if c.BucketName == "" {
			return fmt.Errorf("BUCKET_NAME is required")
		}
		if !c.IsLambda && c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production outside Lambda")
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

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
