package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API:     APIConfig{BaseURL: "https://api.reloved.example", Timeout: 15 * time.Second},
		Storage: StorageConfig{Dir: ".reloved", Prefix: "reloved", Key: "hash-key"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Views:   ViewConfig{ItemsPerPage: 8, ScrollThreshold: 10},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingStorageKey(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Key = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsTinyPageSize(t *testing.T) {
	cfg := validConfig()
	cfg.Views.ItemsPerPage = 1
	assert.Error(t, cfg.Validate())
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8, cfg.Views.ItemsPerPage)
	assert.Equal(t, 10, cfg.Views.ScrollThreshold)
	assert.Equal(t, "info", cfg.Logging.Level)
}
