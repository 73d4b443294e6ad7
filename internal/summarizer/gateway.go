package summarizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"text-summarizer/internal/metrics"
)

// Gateway is the single shared entry point to the summarization provider. It records
// whether the provider initialized and bounds how many calls run at once.
type Gateway struct {
	provider string
	backend  Summarizer
	initErr  error
	slots    *semaphore.Weighted
	log      *slog.Logger
}

// NewGateway wraps backend. A non-nil initErr or nil backend yields a gateway in the
// not-loaded state. maxConcurrency below 1 is treated as 1.
func NewGateway(provider string, backend Summarizer, initErr error, maxConcurrency int64, log *slog.Logger) *Gateway {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Gateway{
		provider: provider,
		backend:  backend,
		initErr:  initErr,
		slots:    semaphore.NewWeighted(maxConcurrency),
		log:      log.With("provider", provider),
	}
}

// Loaded reports whether the provider initialized successfully at startup.
func (g *Gateway) Loaded() bool {
	return g != nil && g.backend != nil && g.initErr == nil
}

// Provider names the configured backend.
func (g *Gateway) Provider() string {
	return g.provider
}

// Summarize waits for a free slot and delegates to the provider.
func (g *Gateway) Summarize(ctx context.Context, req Request) (string, error) {
	if !g.Loaded() {
		return "", ErrModelNotLoaded
	}

	metrics.SummarizerWaiting.Inc()
	err := g.slots.Acquire(ctx, 1)
	metrics.SummarizerWaiting.Dec()
	if err != nil {
		return "", err
	}
	defer g.slots.Release(1)

	callID := uuid.New().String()
	log := g.log.With("call_id", callID)
	log.DebugContext(ctx, "summarization started",
		"input_chars", len([]rune(req.Text)),
		"max_length", req.MaxLength,
		"min_length", req.MinLength,
	)

	start := time.Now()
	summary, err := g.backend.Summarize(ctx, req)
	elapsed := time.Since(start)
	metrics.RecordSummarize(g.provider, elapsed, err)
	if err != nil {
		log.ErrorContext(ctx, "summarization failed", "err", err, "duration_ms", elapsed.Milliseconds())
		return "", err
	}

	log.InfoContext(ctx, "summarization completed",
		"summary_chars", len([]rune(summary)),
		"duration_ms", elapsed.Milliseconds(),
	)
	return summary, nil
}
