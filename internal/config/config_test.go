package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig

	assert.Equal(t, 16, cfg.Bridge.AntiSpinSleepMS)
	assert.Equal(t, 100, cfg.Bridge.ResizeWaitMS)
	assert.False(t, cfg.Bridge.Inhibit)
	assert.Equal(t, "auto", cfg.Clipboard.Backend)
}

func TestGetBeforeInitReturnsDefaults(t *testing.T) {
	old := cfg
	cfg = nil
	defer func() { cfg = old }()

	got := Get()
	assert.Equal(t, DefaultConfig.Bridge, got.Bridge)
}

func TestInitReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uibridge.toml")
	content := `
[bridge]
anti_spin_sleep_ms = 0
inhibit = true

[clipboard]
backend = "x11"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	SetConfigPath(path)
	defer SetConfigPath("")

	require.NoError(t, Init())

	got := Get()
	assert.Equal(t, 0, got.Bridge.AntiSpinSleepMS)
	assert.True(t, got.Bridge.Inhibit)
	assert.Equal(t, "x11", got.Clipboard.Backend)
	// Untouched keys keep their defaults
	assert.Equal(t, 100, got.Bridge.ResizeWaitMS)
}

func TestInitMissingFileUsesDefaults(t *testing.T) {
	SetConfigPath("")
	require.NoError(t, Init())

	got := Get()
	assert.Equal(t, DefaultConfig.Clipboard.Backend, got.Clipboard.Backend)
}
