// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the storefront client
type Config struct {
	App           AppConfig
	API           APIConfig
	Catalog       CatalogConfig
	Cart          CartConfig
	Admin         AdminConfig
	Notifications NotificationConfig
	MockAPI       MockAPIConfig
	Logging       LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// APIConfig contains backend API connection configuration
type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

// CatalogConfig contains product browsing configuration
type CatalogConfig struct {
	PageSize       int
	SearchDebounce time.Duration
	PriceRangeMax  float64
}

// CartConfig contains cart behavior configuration
type CartConfig struct {
	HydrateTimeout time.Duration
}

// AdminConfig contains admin view configuration
type AdminConfig struct {
	PageSize int
}

// NotificationConfig contains notification queue configuration
type NotificationConfig struct {
	DefaultDuration time.Duration
}

// MockAPIConfig contains configuration for the development backend
type MockAPIConfig struct {
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	JWTSecret         string
	AccessTokenExpiry time.Duration
	BcryptCost        int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// fileConfig mirrors the optional TOML config file layout.
type fileConfig struct {
	APIBaseURL     string `toml:"api_base_url"`
	RequestTimeout string `toml:"request_timeout"`
	PageSize       int    `toml:"page_size"`
	SearchDebounce string `toml:"search_debounce"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
}

const defaultConfigFile = "storefront.toml"

// Load loads configuration from the optional TOML file, environment
// variables and .env file. Environment variables win over file values.
func Load() (*Config, error) {
	return LoadFrom(getEnv("STOREFRONT_CONFIG", defaultConfigFile))
}

// LoadFrom loads configuration using the given TOML file path. A missing
// file is not an error; defaults apply.
func LoadFrom(path string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront Client"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", stringOr(file.APIBaseURL, "http://localhost:5000/api")),
			RequestTimeout: getEnvAsDuration("API_REQUEST_TIMEOUT", durationOr(file.RequestTimeout, 10*time.Second)),
			UserAgent:      getEnv("API_USER_AGENT", "storefront-client/1.0"),
		},
		Catalog: CatalogConfig{
			PageSize:       getEnvAsInt("CATALOG_PAGE_SIZE", intOr(file.PageSize, 12)),
			SearchDebounce: getEnvAsDuration("CATALOG_SEARCH_DEBOUNCE", durationOr(file.SearchDebounce, 300*time.Millisecond)),
			PriceRangeMax:  getEnvAsFloat("CATALOG_PRICE_RANGE_MAX", 10000),
		},
		Cart: CartConfig{
			HydrateTimeout: getEnvAsDuration("CART_HYDRATE_TIMEOUT", 5*time.Second),
		},
		Admin: AdminConfig{
			PageSize: getEnvAsInt("ADMIN_PAGE_SIZE", 10),
		},
		Notifications: NotificationConfig{
			DefaultDuration: getEnvAsDuration("NOTIFICATION_DURATION", 3*time.Second),
		},
		MockAPI: MockAPIConfig{
			Port:              getEnv("MOCKAPI_PORT", "5000"),
			ReadTimeout:       getEnvAsDuration("MOCKAPI_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      getEnvAsDuration("MOCKAPI_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getEnvAsDuration("MOCKAPI_IDLE_TIMEOUT", 60*time.Second),
			JWTSecret:         getEnv("MOCKAPI_JWT_SECRET", "local-development-secret-do-not-use-in-prod"),
			AccessTokenExpiry: getEnvAsDuration("MOCKAPI_JWT_EXPIRE", 24*time.Hour),
			BcryptCost:        getEnvAsInt("MOCKAPI_BCRYPT_COST", 10),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", stringOr(file.LogLevel, "info")),
			Format: getEnv("LOG_FORMAT", stringOr(file.LogFormat, "text")),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL")
	}
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}
	if c.MockAPI.Port == "" {
		return fmt.Errorf("MOCKAPI_PORT is required")
	}
	if len(c.MockAPI.JWTSecret) < 16 {
		return fmt.Errorf("MOCKAPI_JWT_SECRET must be at least 16 characters long")
	}
	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return file, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return file, nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Helpers merging TOML file values with defaults

func stringOr(fileValue, defaultValue string) string {
	if strings.TrimSpace(fileValue) != "" {
		return fileValue
	}
	return defaultValue
}

func intOr(fileValue, defaultValue int) int {
	if fileValue > 0 {
		return fileValue
	}
	return defaultValue
}

func durationOr(fileValue string, defaultValue time.Duration) time.Duration {
	if fileValue != "" {
		if duration, err := time.ParseDuration(fileValue); err == nil {
			return duration
		}
	}
	return defaultValue
}
