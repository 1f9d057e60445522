package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// OfflineFlagValue is the only IS_OFFLINE value that enables simulated delivery
const OfflineFlagValue = "true"

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Email       EmailConfig
	AWS         AWSConfig
	Log         LogConfig
	Server      ServerConfig
}

// EmailConfig holds delivery configuration
type EmailConfig struct {
	// OfflineFlag is the raw IS_OFFLINE value
	OfflineFlag string
	// SenderEmail is the From address; it may be empty and is only required
	// when a real send is attempted.
	SenderEmail string
}

// AWSConfig holds SES client configuration
type AWSConfig struct {
	Region           string
	SESEndpoint      string `validate:"omitempty,url"`
	ConfigurationSet string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=json text"`
}

// ServerConfig holds settings for the local development server
type ServerConfig struct {
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gt=0"`
	MaxBodyBytes   int64   `validate:"gt=0"`
}

// IsOffline reports whether delivery should be simulated
func (c *Config) IsOffline() bool {
	return c.Email.OfflineFlag == OfflineFlagValue
}

// Validate checks the ambient settings. The sender address is deliberately
// not checked here; its absence is reported per request.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("MAX_BODY_BYTES", 256*1024)
	if IsServerlessMode() {
		v.SetDefault("LOG_FORMAT", "json")
	} else {
		v.SetDefault("LOG_FORMAT", "text")
	}

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Email: EmailConfig{
			OfflineFlag: v.GetString("IS_OFFLINE"),
			SenderEmail: v.GetString("SENDER_EMAIL"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			SESEndpoint:      v.GetString("SES_ENDPOINT"),
			ConfigurationSet: v.GetString("SES_CONFIGURATION_SET"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Server: ServerConfig{
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
