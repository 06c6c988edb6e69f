package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Engine  EngineConfig
	Session SessionConfig
	Sentry  SentryConfig
}

// ServerConfig holds HTTP server configuration for the console surface
type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// EngineConfig holds configuration for the upstream analytics backend
type EngineConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds staff session persistence configuration
type SessionConfig struct {
	TokenFile string
}

// SentryConfig holds Sentry configuration
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// .env file is optional for production (env vars are used)
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetInt("server_port"),
			ReadTimeout:     viper.GetDuration("server_read_timeout"),
			WriteTimeout:    viper.GetDuration("server_write_timeout"),
			ShutdownTimeout: viper.GetDuration("server_shutdown_timeout"),
		},
		Engine: EngineConfig{
			BaseURL: viper.GetString("engine_base_url"),
			Timeout: viper.GetDuration("engine_timeout"),
		},
		Session: SessionConfig{
			TokenFile: viper.GetString("session_token_file"),
		},
		Sentry: SentryConfig{
			DSN:         viper.GetString("sentry_dsn"),
			Environment: viper.GetString("sentry_environment"),
			Release:     viper.GetString("sentry_release"),
		},
	}

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server_port", 8090)
	viper.SetDefault("server_read_timeout", 10*time.Second)
	viper.SetDefault("server_write_timeout", 30*time.Second)
	viper.SetDefault("server_shutdown_timeout", 30*time.Second)

	// Engine defaults
	viper.SetDefault("engine_base_url", "http://localhost:8000/api")
	viper.SetDefault("engine_timeout", 30*time.Second)

	// Session defaults. The token file name is fixed so a restart picks the
	// session back up, the same way the browser console keyed local storage.
	viper.SetDefault("session_token_file", ".auth_token")
}

func validate(cfg *Config) error {
	if cfg.Engine.BaseURL == "" {
		return fmt.Errorf("ENGINE_BASE_URL is required")
	}
	if !strings.HasPrefix(cfg.Engine.BaseURL, "http://") && !strings.HasPrefix(cfg.Engine.BaseURL, "https://") {
		return fmt.Errorf("ENGINE_BASE_URL must be an absolute http(s) URL")
	}
	if cfg.Session.TokenFile == "" {
		return fmt.Errorf("SESSION_TOKEN_FILE is required")
	}
	return nil
}
