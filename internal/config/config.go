package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration of the API backend
type Config struct {
	// Port is the TCP port the HTTP server binds to
	Port int `envconfig:"PORT" default:"8080"`

	// APIPrefix is the path prefix shared by the greeting routes
	// Must start with "/" and must not end with "/"
	APIPrefix string `envconfig:"API_PREFIX" default:"/api"`

	ServiceName string `envconfig:"SERVICE_NAME" default:"api-backend"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// GinMode is passed to gin.SetMode (debug, release, test)
	GinMode string `envconfig:"GIN_MODE" default:"release"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
	SwaggerEnabled bool `envconfig:"SWAGGER_ENABLED" default:"true"`

	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
}

// ValidationError represents a configuration error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Load reads .env files (if any) and then the process environment into Config.
// Variables already set in the environment take precedence over .env values.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the configured values
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return NewValidationError("PORT", fmt.Sprintf("must be between 1 and 65535 (got: %d)", c.Port))
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return NewValidationError("API_PREFIX", fmt.Sprintf("must start with \"/\" (got: %q)", c.APIPrefix))
	}
	if c.APIPrefix != "/" && strings.HasSuffix(c.APIPrefix, "/") {
		return NewValidationError("API_PREFIX", fmt.Sprintf("must not end with \"/\" (got: %q)", c.APIPrefix))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return NewValidationError("GIN_MODE", fmt.Sprintf("must be one of debug, release, test (got: %q)", c.GinMode))
	}
	if c.ShutdownTimeout <= 0 {
		return NewValidationError("SHUTDOWN_TIMEOUT", "must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment returns true if environment is development
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// loadEnvFiles loads the given .env files, defaulting to ".env".
// Missing files are skipped.
func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}
