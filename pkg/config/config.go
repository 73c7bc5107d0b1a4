package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL points at the hosted NutriVeg API.
	DefaultBaseURL = "https://nutriveg-backend.vercel.app/"

	// DefaultPageLimit is the page size used by listing commands.
	DefaultPageLimit = 12

	defaultTimeout = 30 * time.Second
)

// APIConfig holds settings for the remote content API.
type APIConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// CLIConfig holds presentation settings.
type CLIConfig struct {
	// DefaultFormat is "auto", "json" or "tui".
	DefaultFormat string `validate:"oneof=auto json tui"`
	Interactive   bool
	NoColor       bool
	// CredentialsFile stores the session token between runs.
	CredentialsFile string `validate:"required"`
}

// RuntimeConfig holds diagnostics settings.
type RuntimeConfig struct {
	LogLevel string `validate:"oneof=debug info warn error"`
	LogJSON  bool
}

// Config is the resolved CLI configuration. Precedence: defaults, then
// .env / environment, then flags applied by the root command.
type Config struct {
	API     APIConfig
	CLI     CLIConfig
	Runtime RuntimeConfig
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	credentials, err := defaultCredentialsFile()
	if err != nil {
		return nil, err
	}
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: defaultTimeout,
		},
		CLI: CLIConfig{
			DefaultFormat:   "auto",
			CredentialsFile: credentials,
		},
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
	}, nil
}

func defaultCredentialsFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "nutriveg", "credentials.json"), nil
}

// Load builds the configuration from defaults and the environment. A .env
// file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("NUTRIVEG_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("NUTRIVEG_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid NUTRIVEG_API_TIMEOUT: %w", err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv("NUTRIVEG_OUTPUT"); v != "" {
		c.CLI.DefaultFormat = v
	}
	if v := os.Getenv("NUTRIVEG_CREDENTIALS_FILE"); v != "" {
		c.CLI.CredentialsFile = v
	}
	if v := os.Getenv("NUTRIVEG_LOG_LEVEL"); v != "" {
		c.Runtime.LogLevel = v
	}
	if v := os.Getenv("NUTRIVEG_LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid NUTRIVEG_LOG_JSON: %w", err)
		}
		c.Runtime.LogJSON = b
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.CLI.NoColor = true
	}
	return nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
