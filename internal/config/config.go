package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration constants
const (
	// Backend API Configuration
	APIBaseURL = "API_BASE_URL"
	APITimeout = "API_TIMEOUT"

	// Local session storage Configuration
	StorageDir    = "STORAGE_DIR"
	StoragePrefix = "STORAGE_PREFIX"
	StorageKey    = "STORAGE_KEY"

	// Logging Configuration
	LogLevel  = "LOG_LEVEL"
	LogFormat = "LOG_FORMAT"

	// View Configuration
	ItemsPerPage    = "ITEMS_PER_PAGE"
	ScrollThreshold = "SCROLL_THRESHOLD"

	// Listing limits enforced client-side
	MinItemPrice  = 50
	MaxItemPrice  = 50000
	MaxItemImages = 10

	// Attachment ingestion pool sizing
	UploadMaxWorkers  = 4
	UploadMaxCapacity = 16
)

// Config holds all application configuration
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Logging LoggingConfig
	Views   ViewConfig
}

// APIConfig holds backend API configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig holds local session storage configuration
type StorageConfig struct {
	Dir    string
	Prefix string
	Key    string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// ViewConfig holds view-level tuning
type ViewConfig struct {
	ItemsPerPage    int
	ScrollThreshold int
}

// LoadConfig loads configuration from environment variables and .envrc file
func LoadConfig() (*Config, error) {
	// Set up Viper
	viper.SetConfigName(".envrc")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("../config")

	// Enable environment variable reading
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	setDefaults()

	// Read config file (optional, will use env vars if file doesn't exist)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, but that's okay - we'll use environment variables
	}

	config := &Config{
		API: APIConfig{
			BaseURL: viper.GetString(APIBaseURL),
			Timeout: viper.GetDuration(APITimeout),
		},
		Storage: StorageConfig{
			Dir:    viper.GetString(StorageDir),
			Prefix: viper.GetString(StoragePrefix),
			Key:    viper.GetString(StorageKey),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString(LogLevel),
			Format: viper.GetString(LogFormat),
		},
		Views: ViewConfig{
			ItemsPerPage:    viper.GetInt(ItemsPerPage),
			ScrollThreshold: viper.GetInt(ScrollThreshold),
		},
	}

	return config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	// Backend API defaults
	viper.SetDefault(APIBaseURL, "https://api.reloved.example")
	viper.SetDefault(APITimeout, 15*time.Second)

	// Session storage defaults
	viper.SetDefault(StorageDir, ".reloved")
	viper.SetDefault(StoragePrefix, "reloved")
	viper.SetDefault(StorageKey, "")

	// Logging defaults
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(LogFormat, "json")

	// View defaults
	viper.SetDefault(ItemsPerPage, 8)
	viper.SetDefault(ScrollThreshold, 10)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if c.Storage.Dir == "" {
		return fmt.Errorf("storage directory is required")
	}

	if c.Storage.Key == "" {
		return fmt.Errorf("storage hash key is required")
	}

	if c.Views.ItemsPerPage < 2 {
		return fmt.Errorf("items per page must leave room for the add-item tile")
	}

	return nil
}
