package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/clanhall/rostermap/pkg/logging"
)

func TestNewJSONWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	logger.Info().Str("rsn", "Zezima").Msg("matched")

	out := buf.String()
	assert.Contains(t, out, `"rsn":"Zezima"`)
	assert.Contains(t, out, `"message":"matched"`)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	got := logging.FromContext(ctx)
	assert.Equal(t, &logger, got)

	// Missing logger falls back to the default
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck // nil context is part of the contract
}

func TestConfigureLevel(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	logging.Configure(&logging.Config{
		Level:  "warn",
		Format: "json",
		Output: "discard",
	})

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}
