package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	unsetenv(t, "DWIGHT_RUNTIME_PATH", "DWIGHT_CONTEXT_WINDOW_SIZE", "DWIGHT_ENABLE_CLI", "DWIGHT_ENABLE_TELEGRAM")

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, filepath.Join(home, ".dwight"), cfg.GetRuntimePath())
	assert.Equal(t, filepath.Join(home, ".dwight", "dwight.db"), cfg.GetDatabasePath())
	assert.Equal(t, 10, cfg.GetContextWindowSize())
	assert.True(t, cfg.IsCLISelected())
	assert.False(t, cfg.IsTelegramSelected())
}

func TestNewAppConfig_FromEnv(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("DWIGHT_RUNTIME_PATH", runtime)
	t.Setenv("DWIGHT_CONTEXT_WINDOW_SIZE", "3")
	t.Setenv("DWIGHT_ENABLE_TELEGRAM", "true")

	cfg := NewAppConfig(context.Background())

	require.Equal(t, runtime, cfg.GetRuntimePath())
	assert.Equal(t, filepath.Join(runtime, "uploads"), cfg.GetUploadsPath())
	assert.Equal(t, 3, cfg.GetContextWindowSize())
	assert.True(t, cfg.IsTelegramSelected())
}

func TestNewAppConfig_NegativeContextWindow(t *testing.T) {
	t.Setenv("DWIGHT_RUNTIME_PATH", t.TempDir())

	for _, v := range []string{"-1", "-50"} {
		t.Setenv("DWIGHT_CONTEXT_WINDOW_SIZE", v)
		assert.Equal(t, 10, NewAppConfig(context.Background()).GetContextWindowSize(), v)
	}

	t.Setenv("DWIGHT_CONTEXT_WINDOW_SIZE", "0")
	assert.Equal(t, 0, NewAppConfig(context.Background()).GetContextWindowSize())
}

func TestGetRuntimePath_Relative(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DWIGHT_RUNTIME_PATH", "custom")

	assert.Equal(t, filepath.Join(home, "custom"), GetRuntimePath())
}

func TestNewAudioConfig(t *testing.T) {
	t.Setenv("DWIGHT_AUDIO_MAX_SAMPLES", "16000")
	t.Setenv("DWIGHT_AUDIO_SAMPLE_RATE", "8000")

	cfg := NewAudioConfig(context.Background())
	assert.Equal(t, 16000, cfg.GetMaxSamples())
	assert.Equal(t, 8000, cfg.GetSampleRate())
}

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
