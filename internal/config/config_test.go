package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.DebugMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, 10*time.Second, cfg.ProcessingDelay())
	assert.Equal(t, 5*time.Second, cfg.FailureNoticeDelay())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default(dir)
	cfg.DebugMode = true
	cfg.Theme = "dark"
	cfg.ProcessingSeconds = 2
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, loaded.DebugMode)
	assert.Equal(t, "dark", loaded.Theme)
	assert.Equal(t, 2*time.Second, loaded.ProcessingDelay())
	assert.Equal(t, dir, loaded.DataDir())
}

func TestLoadClampsNonPositiveDelays(t *testing.T) {
	dir := t.TempDir()
	raw := `{"processing_seconds": 0, "failure_notice_seconds": -3}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.ProcessingDelay())
	assert.Equal(t, 5*time.Second, cfg.FailureNoticeDelay())
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestDefaultDataDirHonorsEnv(t *testing.T) {
	t.Setenv("SHIPPY_DATA_DIR", "/tmp/shippy-test")
	assert.Equal(t, "/tmp/shippy-test", DefaultDataDir())
}
