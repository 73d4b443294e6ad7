package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"text-summarizer/internal/config"
	"text-summarizer/internal/keywords"
	"text-summarizer/internal/logger"
	"text-summarizer/internal/service"
	"text-summarizer/internal/summarizer"
	"text-summarizer/internal/textsource"
)

const (
	warmupTimeout = 2 * time.Minute
	warmupText    = "The summarization service is starting up. It sends this short passage to the model " +
		"to confirm that the model is reachable and able to produce a summary before traffic is served."
)

// Deps bundles the runtime dependencies shared by the HTTP handlers.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Gateway *summarizer.Gateway
	Service *service.Service
}

// Build loads env, config, and shared components. A summarizer that fails to initialize
// does not fail the build; the gateway reports it as not loaded.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	return BuildFromConfig(context.Background(), cfg, log)
}

// BuildFromConfig wires components from an already loaded configuration.
func BuildFromConfig(ctx context.Context, cfg config.Config, log *slog.Logger) (Deps, error) {
	gateway := buildGateway(ctx, cfg, log)

	extractor, err := keywords.New(keywords.NewProseTokenizer())
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize keyword extractor: %w", err)
	}
	resolver := textsource.NewResolver(cfg.FetchTimeout, log)

	return Deps{
		Config:  cfg,
		Log:     log,
		Gateway: gateway,
		Service: service.New(gateway, resolver, extractor, textsource.ExtractPDF, log),
	}, nil
}

func buildGateway(ctx context.Context, cfg config.Config, log *slog.Logger) *summarizer.Gateway {
	backend, err := buildSummarizer(cfg, log)
	if err == nil && cfg.Warmup {
		err = warmup(ctx, backend)
	}
	if err != nil {
		log.Error("summarization model not loaded; summarize endpoints will fail",
			"provider", cfg.SummarizerProvider, "err", err)
	}
	return summarizer.NewGateway(cfg.SummarizerProvider, backend, err, cfg.MaxConcurrency, log)
}

func warmup(ctx context.Context, backend summarizer.Summarizer) error {
	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()
	_, err := backend.Summarize(ctx, summarizer.Request{
		Text:      warmupText,
		MaxLength: 20,
		MinLength: 5,
	})
	if err != nil {
		return fmt.Errorf("warmup failed: %w", err)
	}
	return nil
}

func buildSummarizer(cfg config.Config, log *slog.Logger) (summarizer.Summarizer, error) {
	switch cfg.SummarizerProvider {
	case "huggingface":
		client, err := summarizer.NewHuggingFaceClient(cfg.HFAPIURL, cfg.SummarizerModel, cfg.HFAPIToken)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Hugging Face client: %w", err)
		}
		log.Info("using Hugging Face summarizer", "model", cfg.SummarizerModel)
		return client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when SUMMARIZER_PROVIDER=openai")
		}
		client, err := summarizer.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.OpenAIModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI summarizer", "model", cfg.OpenAIModel)
		return client, nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when SUMMARIZER_PROVIDER=anthropic")
		}
		client, err := summarizer.NewAnthropicClient(cfg.AnthropicKey, cfg.AnthropicModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Anthropic client: %w", err)
		}
		log.Info("using Anthropic summarizer", "model", cfg.AnthropicModel)
		return client, nil
	case "stub":
		log.Warn("using stub summarizer")
		return summarizer.StubSummarizer{}, nil
	default:
		return nil, fmt.Errorf("invalid SUMMARIZER_PROVIDER: %s (valid options: huggingface, openai, anthropic, stub)", cfg.SummarizerProvider)
	}
}
