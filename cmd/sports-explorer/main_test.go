package main

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-explorer/internal/config"
	"sports-explorer/internal/logger"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\napi:\n  api_key: \"123\"\n"), 0o600))

	cfg, err := loadConfig(options{configPath: path, logLevel: "debug", metricsAddr: "127.0.0.1:0"})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "123", cfg.API.APIKey)
	assert.Equal(t, "127.0.0.1:0", cfg.Metrics.Addr)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	_, err := loadConfig(options{logLevel: "loud"})
	assert.Error(t, err)
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"config", "log-level", "log-format", "metrics-addr"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Contains(t, cmd.Version, version)
}

func TestNewApplicationRegistersPages(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Addr = "127.0.0.1:0"

	a := NewApplication(context.Background(), test.NewApp(), cfg, logger.NewNop())
	t.Cleanup(a.shutdown.Shutdown)

	assert.Equal(t, []string{
		"Welcome",
		"About the Sports",
		"Player Search",
		"Team Info",
		"Head-to-Head Comparison",
	}, a.view.TabTitles())
	assert.Equal(t, cfg.Window.Title, a.window.Title())
	require.NotNil(t, a.metrics)
	assert.NotEmpty(t, a.metrics.Addr())
}

func TestMetricsBindFailureIsShownNotFatal(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = taken.Close() })

	cfg := config.Default()
	cfg.Metrics.Addr = taken.Addr().String()

	a := NewApplication(context.Background(), test.NewApp(), cfg, logger.NewNop())
	t.Cleanup(a.shutdown.Shutdown)

	assert.Nil(t, a.metrics)
	assert.NotNil(t, a.window.Canvas().Overlays().Top())
	assert.Contains(t, a.view.StatusBar().GetStatus(), "metrics endpoint")
	assert.Len(t, a.view.TabTitles(), 5)
}
