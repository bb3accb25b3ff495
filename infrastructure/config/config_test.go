package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "mynotes", cfg.DynamoDBTable)
	assert.Equal(t, "mynotes-files", cfg.BucketName)
	assert.Equal(t, 15*time.Minute, cfg.PresignExpiry)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TABLE_NAME", "notes-prod")
	t.Setenv("BUCKET_NAME", "notes-prod-files")
	t.Setenv("PRESIGN_EXPIRY_MINUTES", "5")
	t.Setenv("ENABLE_METRICS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "notes-prod", cfg.DynamoDBTable)
	assert.Equal(t, "notes-prod-files", cfg.BucketName)
	assert.Equal(t, 5*time.Minute, cfg.PresignExpiry)
	assert.True(t, cfg.EnableMetrics)
}

func TestLambdaDetection(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "mynotes-api")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsLambda)
}

func TestValidate(t *testing.T) {
	t.Run("production requires a jwt secret outside lambda", func(t *testing.T) {
		cfg := &Config{
			Environment:   "production",
			DynamoDBTable: "t",
			BucketName:    "b",
		}
		assert.Error(t, cfg.Validate())

		cfg.JWTSecret = "secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("lambda needs no jwt secret", func(t *testing.T) {
		cfg := &Config{
			Environment:   "production",
			DynamoDBTable: "t",
			BucketName:    "b",
			IsLambda:      true,
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("development is permissive", func(t *testing.T) {
		cfg := &Config{Environment: "development"}
		assert.NoError(t, cfg.Validate())
	})
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "production"}).IsDevelopment())
}
