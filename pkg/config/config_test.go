package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("Should provide usable defaults", func(t *testing.T) {
		cfg, err := Default()
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
		assert.Equal(t, "auto", cfg.CLI.DefaultFormat)
		assert.NotEmpty(t, cfg.CLI.CredentialsFile)
		require.NoError(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("Should apply environment overrides", func(t *testing.T) {
		t.Setenv("NUTRIVEG_API_URL", "http://localhost:3000/")
		t.Setenv("NUTRIVEG_API_TIMEOUT", "5s")
		t.Setenv("NUTRIVEG_OUTPUT", "json")
		t.Setenv("NUTRIVEG_LOG_LEVEL", "debug")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/", cfg.API.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "json", cfg.CLI.DefaultFormat)
		assert.Equal(t, "debug", cfg.Runtime.LogLevel)
	})

	t.Run("Should reject malformed timeout", func(t *testing.T) {
		t.Setenv("NUTRIVEG_API_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Should reject unknown output format", func(t *testing.T) {
		t.Setenv("NUTRIVEG_OUTPUT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Should reject non-URL base address", func(t *testing.T) {
		cfg, err := Default()
		require.NoError(t, err)
		cfg.API.BaseURL = "not a url"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Should reject unknown log level", func(t *testing.T) {
		cfg, err := Default()
		require.NoError(t, err)
		cfg.Runtime.LogLevel = "loud"
		assert.Error(t, cfg.Validate())
	})
}

func TestContext(t *testing.T) {
	t.Run("Should round-trip through context", func(t *testing.T) {
		cfg, err := Default()
		require.NoError(t, err)
		ctx := ContextWithConfig(context.Background(), cfg)
		assert.Same(t, cfg, FromContext(ctx))
	})

	t.Run("Should return nil when absent", func(t *testing.T) {
		assert.Nil(t, FromContext(context.Background()))
	})
}
