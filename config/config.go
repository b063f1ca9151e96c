package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment        string        `env:"GO_ENV" envDefault:"development"`
	Port               string        `env:"PORT" envDefault:"8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	SeedFile           string        `env:"SEED_FILE"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Mail               MailConfig
}

// MailConfig configures the signup confirmation mailer.
type MailConfig struct {
	Provider              string `env:"MAIL_PROVIDER" envDefault:"noop"`
	FromAddress           string `env:"MAIL_FROM_ADDRESS" envDefault:"activities@mergington.edu"`
	FromName              string `env:"MAIL_FROM_NAME" envDefault:"Mergington High School"`
	AWSRegion             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID        string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	// Load .env file if not in production.
	// In production we rely on system environment variables only.
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Mail.Provider == "ses" && (cfg.Mail.AWSAccessKeyID == "" || cfg.Mail.AWSSecretAccessKey == "") {
		return nil, fmt.Errorf("MAIL_PROVIDER=ses requires AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
