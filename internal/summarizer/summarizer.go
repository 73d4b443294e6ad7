package summarizer

import (
	"context"
	"errors"
)

const (
	// DefaultMaxLength is the upper output bound used when the caller sets none.
	DefaultMaxLength = 130
	// DefaultMinLength is the lower output bound used when the caller sets none.
	DefaultMinLength = 30
)

// ErrModelNotLoaded is returned by a Gateway whose provider failed to initialize.
var ErrModelNotLoaded = errors.New("summarizer model not loaded")

// Request is one summarization call. Length bounds are advisory; providers may not
// honor them exactly.
type Request struct {
	Text      string
	MaxLength int
	MinLength int
	DoSample  bool
}

// Summarizer maps text and length bounds to a single summary string.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}
