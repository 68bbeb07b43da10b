package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateS3ReportsMissingVariables(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Backend: BackendS3, Endpoint: "https://r2.example.com"}}

	err := cfg.Validate()

	assert.EqualError(t, err, "missing required environment variables: CLOUDFLARE_R2_ACCESS_KEY_ID, CLOUDFLARE_R2_BUCKET, CLOUDFLARE_R2_SECRET_ACCESS_KEY")
}

func TestValidateS3Complete(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{
		Backend:   BackendS3,
		Endpoint:  "https://r2.example.com",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "housing",
	}}

	assert.NoError(t, cfg.Validate())
}

func TestValidatePostgresNeedsConnString(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Backend: BackendPostgres}}
	assert.Error(t, cfg.Validate())

	cfg.Storage.DatabaseURL = "postgres://localhost/housing"
	assert.NoError(t, cfg.Validate())
}

func TestValidateUnknownBackend(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Backend: "ftp"}}
	assert.Error(t, cfg.Validate())
}

func TestBrokers(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.Brokers())

	cfg.Broker.KafkaBrokers = "a:9092,b:9092"
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Brokers())
}
