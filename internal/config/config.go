package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration for the summarizer API.
type Config struct {
	// Server
	Port            int           `env:"PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// URL fetching
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`

	// Summarization
	SummarizerProvider string `env:"SUMMARIZER_PROVIDER" envDefault:"huggingface"` // "huggingface", "openai", "anthropic" or "stub"
	SummarizerModel    string `env:"SUMMARIZER_MODEL" envDefault:"facebook/bart-large-cnn"`
	MaxConcurrency     int64  `env:"SUMMARIZER_MAX_CONCURRENCY" envDefault:"1"`
	Warmup             bool   `env:"SUMMARIZER_WARMUP" envDefault:"false"`

	HFAPIURL   string `env:"HF_API_URL" envDefault:"https://router.huggingface.co/hf-inference"`
	HFAPIToken string `env:"HF_API_TOKEN"`

	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	AnthropicKey   string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel string `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5-20250929"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
