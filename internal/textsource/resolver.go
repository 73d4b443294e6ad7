// Package textsource turns URLs and uploaded documents into plain text for summarization.
package textsource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"text-summarizer/internal/metrics"
)

const (
	// DefaultFetchTimeout bounds a whole page fetch, body included.
	DefaultFetchTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
)

// Resolver fetches web pages and extracts their paragraph text.
type Resolver struct {
	client *http.Client
	log    *slog.Logger
}

// NewResolver returns a Resolver whose fetches time out after timeout.
func NewResolver(timeout time.Duration, log *slog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Resolver{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// FetchParagraphs GETs rawURL and returns the text of its <p> elements joined by single
// spaces in document order. Non-2xx responses are parsed like any other body.
func (r *Resolver) FetchParagraphs(ctx context.Context, rawURL string) (string, error) {
	text, err := r.fetch(ctx, rawURL)
	metrics.RecordFetch(err)
	if err != nil {
		r.log.WarnContext(ctx, "page fetch failed", "url", rawURL, "err", err)
		return "", err
	}
	return text, nil
}

func (r *Resolver) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	r.log.DebugContext(ctx, "page fetched", "url", rawURL, "status", resp.StatusCode)

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode charset: %w", err)
	}
	return ExtractParagraphs(body)
}

// ExtractParagraphs parses HTML and joins the text of every <p> element with single spaces.
func ExtractParagraphs(body io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	paragraphs := doc.Find("p")
	parts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(parts, " "), nil
}
