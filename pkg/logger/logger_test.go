package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Should write structured text output", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, Output: &buf})
		log.Info("fetching recipes", "offset", 12, "limit", 12)
		out := buf.String()
		assert.Contains(t, out, "fetching recipes")
		assert.Contains(t, out, "offset=12")
	})

	t.Run("Should suppress messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: WarnLevel, Output: &buf})
		log.Info("hidden")
		log.Warn("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		log.Info("session restored", "user", "42")
		line := strings.TrimSpace(buf.String())
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &payload))
		assert.Equal(t, "session restored", payload["msg"])
		assert.Equal(t, "42", payload["user"])
	})

	t.Run("Should carry fields added with With", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, Output: &buf}).With("collection", "articles")
		log.Info("page loaded")
		assert.Contains(t, buf.String(), "collection=articles")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return logger attached to context", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: DebugLevel, Output: &buf})
		ctx := ContextWithLogger(context.Background(), log)
		FromContext(ctx).Debug("attached")
		assert.Contains(t, buf.String(), "attached")
	})

	t.Run("Should fall back to a default logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		assert.NotNil(t, FromContext(nil)) //nolint:staticcheck
	})
}
