// Package service implements the request contract around the summarizer, the page
// fetcher and the keyword extractor: validation, defaults, truncation and result shape.
package service

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"text-summarizer/internal/apperr"
	"text-summarizer/internal/summarizer"
)

// MaxInputChars is the longest text handed to the summarizer.
const MaxInputChars = 10000

const modelNotLoaded = "Model not loaded"

// SummaryGateway is the summarization capability plus its startup state.
type SummaryGateway interface {
	Loaded() bool
	Summarize(ctx context.Context, req summarizer.Request) (string, error)
}

// PageFetcher returns the paragraph text of a web page.
type PageFetcher interface {
	FetchParagraphs(ctx context.Context, rawURL string) (string, error)
}

// KeywordExtractor ranks frequent content words.
type KeywordExtractor interface {
	Extract(text string) ([]string, error)
}

// PDFExtractor returns a document's text and page count.
type PDFExtractor func(content []byte) (string, int, error)

// SummarizeResult is returned by Summarize.
type SummarizeResult struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

// SummarizeURLResult is returned by SummarizeURL. It has no summary length.
type SummarizeURLResult struct {
	Summary        string `json:"summary"`
	URL            string `json:"url"`
	OriginalLength int    `json:"original_length"`
}

// KeywordsResult is returned by ExtractKeywords.
type KeywordsResult struct {
	Keywords []string `json:"keywords"`
}

// SummarizePDFResult is returned by SummarizePDF.
type SummarizePDFResult struct {
	Summary        string `json:"summary"`
	Filename       string `json:"filename"`
	OriginalLength int    `json:"original_length"`
	Pages          int    `json:"pages"`
}

// Service wires the operations to their collaborators.
type Service struct {
	gateway  SummaryGateway
	pages    PageFetcher
	keywords KeywordExtractor
	pdf      PDFExtractor
	log      *slog.Logger
}

// New builds a Service.
func New(gateway SummaryGateway, pages PageFetcher, keywords KeywordExtractor, pdf PDFExtractor, log *slog.Logger) *Service {
	return &Service{
		gateway:  gateway,
		pages:    pages,
		keywords: keywords,
		pdf:      pdf,
		log:      log,
	}
}

// ModelLoaded reports the summarizer's startup outcome.
func (s *Service) ModelLoaded() bool {
	return s.gateway.Loaded()
}

// Summarize summarizes caller-supplied text with optional length bounds.
func (s *Service) Summarize(ctx context.Context, req SummarizeRequest) (SummarizeResult, error) {
	if err := validate(req); err != nil {
		return SummarizeResult{}, err
	}
	maxLength := intOr(req.MaxLength, summarizer.DefaultMaxLength)
	minLength := intOr(req.MinLength, summarizer.DefaultMinLength)
	if minLength > maxLength {
		return SummarizeResult{}, apperr.Validation("min_length must not exceed max_length")
	}
	if !s.gateway.Loaded() {
		return SummarizeResult{}, apperr.Unavailable(modelNotLoaded, summarizer.ErrModelNotLoaded)
	}

	text, length := s.truncate(ctx, req.Text)
	summary, err := s.summarize(ctx, text, maxLength, minLength)
	if err != nil {
		return SummarizeResult{}, err
	}
	return SummarizeResult{
		Summary:        summary,
		OriginalLength: length,
		SummaryLength:  utf8.RuneCountInString(summary),
	}, nil
}

// SummarizeURL fetches a page and summarizes its paragraph text with the default bounds.
func (s *Service) SummarizeURL(ctx context.Context, req SummarizeURLRequest) (SummarizeURLResult, error) {
	if err := validate(req); err != nil {
		return SummarizeURLResult{}, err
	}

	text, err := s.pages.FetchParagraphs(ctx, req.URL)
	if err != nil {
		return SummarizeURLResult{}, apperr.Internal(err)
	}
	if text == "" {
		return SummarizeURLResult{}, apperr.Validation("No text found in URL")
	}

	text, length := s.truncate(ctx, text)
	summary, err := s.summarize(ctx, text, summarizer.DefaultMaxLength, summarizer.DefaultMinLength)
	if err != nil {
		return SummarizeURLResult{}, err
	}
	return SummarizeURLResult{
		Summary:        summary,
		URL:            req.URL,
		OriginalLength: length,
	}, nil
}

// SummarizePDF summarizes the text of an uploaded PDF with the default bounds.
func (s *Service) SummarizePDF(ctx context.Context, req SummarizePDFRequest) (SummarizePDFResult, error) {
	if err := validate(req); err != nil {
		return SummarizePDFResult{}, err
	}

	text, pages, err := s.pdf(req.Content)
	if err != nil {
		return SummarizePDFResult{}, apperr.Internal(err)
	}
	if text == "" {
		return SummarizePDFResult{}, apperr.Validation("No text found in PDF")
	}

	text, length := s.truncate(ctx, text)
	summary, err := s.summarize(ctx, text, summarizer.DefaultMaxLength, summarizer.DefaultMinLength)
	if err != nil {
		return SummarizePDFResult{}, err
	}
	return SummarizePDFResult{
		Summary:        summary,
		Filename:       req.Filename,
		OriginalLength: length,
		Pages:          pages,
	}, nil
}

// ExtractKeywords returns up to ten frequent content words of the text.
func (s *Service) ExtractKeywords(_ context.Context, req KeywordRequest) (KeywordsResult, error) {
	if err := validate(req); err != nil {
		return KeywordsResult{}, err
	}
	keywords, err := s.keywords.Extract(req.Text)
	if err != nil {
		return KeywordsResult{}, apperr.Internal(err)
	}
	if keywords == nil {
		keywords = []string{}
	}
	return KeywordsResult{Keywords: keywords}, nil
}

// summarize calls the gateway with sampling disabled. A gateway that never loaded
// surfaces as an internal error here, matching downstream failures.
func (s *Service) summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	summary, err := s.gateway.Summarize(ctx, summarizer.Request{
		Text:      text,
		MaxLength: maxLength,
		MinLength: minLength,
		DoSample:  false,
	})
	if errors.Is(err, summarizer.ErrModelNotLoaded) {
		return "", apperr.New(apperr.KindInternal, modelNotLoaded, err)
	}
	if err != nil {
		return "", apperr.Internal(err)
	}
	return summary, nil
}

// truncate keeps the first MaxInputChars characters and returns the kept length.
func (s *Service) truncate(ctx context.Context, text string) (string, int) {
	kept, length, cut := truncateRunes(text, MaxInputChars)
	if cut {
		s.log.DebugContext(ctx, "input truncated", "limit", MaxInputChars)
	}
	return kept, length
}

func truncateRunes(text string, limit int) (string, int, bool) {
	count := 0
	for i := range text {
		if count == limit {
			return text[:i], limit, true
		}
		count++
	}
	return text, count, false
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
