package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if original, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, original) })
	}
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "FETCH_TIMEOUT", "SUMMARIZER_PROVIDER",
		"SUMMARIZER_MODEL", "SUMMARIZER_MAX_CONCURRENCY", "SUMMARIZER_WARMUP", "OPENAI_MODEL", "MAX_UPLOAD_SIZE",
	} {
		unsetEnv(t, key)
	}

	cfg := Load()

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"Port", cfg.Port, 5000},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "json"},
		{"FetchTimeout", cfg.FetchTimeout, 10 * time.Second},
		{"SummarizerProvider", cfg.SummarizerProvider, "huggingface"},
		{"SummarizerModel", cfg.SummarizerModel, "facebook/bart-large-cnn"},
		{"MaxConcurrency", cfg.MaxConcurrency, int64(1)},
		{"Warmup", cfg.Warmup, false},
		{"OpenAIModel", cfg.OpenAIModel, "gpt-4o-mini"},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(10 * 1024 * 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("SUMMARIZER_MAX_CONCURRENCY", "4")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, int64(4), cfg.MaxConcurrency)
}

func TestLoadProviderOverrides(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "stub")
	t.Setenv("SUMMARIZER_WARMUP", "true")

	cfg := Load()

	assert.Equal(t, "stub", cfg.SummarizerProvider)
	assert.True(t, cfg.Warmup)
}
