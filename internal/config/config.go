// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront client
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Payment PaymentConfig
	Logging LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// APIConfig contains remote storefront API configuration
type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// SessionConfig contains session persistence configuration
type SessionConfig struct {
	Backend string // "file" or "redis"
	Dir     string // record directory for the file backend
}

// RedisConfig contains Redis configuration for the redis session backend
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// PaymentConfig contains Razorpay checkout configuration (test mode)
type PaymentConfig struct {
	RazorpayKeyID string
	StoreName     string
	Description   string
	Currency      string
	ThemeColor    string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Jubili Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", ""),
			RequestTimeout: getEnvAsDuration("API_REQUEST_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			Backend: getEnv("SESSION_BACKEND", "file"),
			Dir:     getEnv("SESSION_DIR", defaultSessionDir()),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Payment: PaymentConfig{
			RazorpayKeyID: getEnv("RAZORPAY_KEY_ID", "rzp_test_1234567890"),
			StoreName:     getEnv("PAYMENT_STORE_NAME", "Jubili Store"),
			Description:   getEnv("PAYMENT_DESCRIPTION", "Dummy product purchase"),
			Currency:      getEnv("PAYMENT_CURRENCY", "INR"),
			ThemeColor:    getEnv("PAYMENT_THEME_COLOR", "#3399cc"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "text"),
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
	// Validate API configuration
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	// Validate session backend
	switch c.Session.Backend {
	case "file":
		if c.Session.Dir == "" {
			return fmt.Errorf("SESSION_DIR is required for the file session backend")
		}
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis session backend")
		}
	default:
		return fmt.Errorf("SESSION_BACKEND must be \"file\" or \"redis\", got %q", c.Session.Backend)
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

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jubili"
	}
	return home + "/.jubili"
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
