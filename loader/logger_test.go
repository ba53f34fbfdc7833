package loader

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	logger := NopLogger{}
	// All methods are no-ops; With returns a usable logger.
	logger.Debug("ignored", "k", "v")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	assert.NotNil(t, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("loading", "source", "api.yaml")
	assert.Contains(t, buf.String(), "loading")
	assert.Contains(t, buf.String(), "source=api.yaml")

	buf.Reset()
	child := logger.With("format", "yaml")
	child.Info("decoded")
	assert.Contains(t, buf.String(), "format=yaml")
}

func TestSlogAdapterNilDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	// Logs go to slog.Default(); just exercise the paths.
	adapter.Warn("default logger in use")
}

func TestLoadWithLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	_, err := Load(
		WithBytes([]byte(sampleYAML)),
		WithSourceName("logged.yaml"),
		WithLogger(NewSlogAdapter(slog.New(handler))),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "detected source format")
	assert.Contains(t, buf.String(), "source=logged.yaml")
}
