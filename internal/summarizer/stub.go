package summarizer

import (
	"context"
	"strings"
)

// StubSummarizer returns the first MaxLength words of the input. It needs no model and
// is meant for local runs.
type StubSummarizer struct{}

func (StubSummarizer) Summarize(_ context.Context, req Request) (string, error) {
	words := strings.Fields(req.Text)
	limit := req.MaxLength
	if limit <= 0 {
		limit = DefaultMaxLength
	}
	if len(words) > limit {
		words = words[:limit]
	}
	return strings.Join(words, " "), nil
}
