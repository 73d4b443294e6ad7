// Package keywords ranks the most frequent content words of a text.
package keywords

import (
	"bufio"
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxKeywords caps the number of keywords returned.
	MaxKeywords = 10
	// minRunes is the shortest token kept.
	minRunes = 4
)

//go:embed stopwords_english.txt
var englishStopwords string

// Extractor filters tokens against the English stopword set and ranks them by frequency.
type Extractor struct {
	tokenizer Tokenizer
	stopwords map[string]struct{}
}

// New loads the stopword set. It fails when the set is empty.
func New(tokenizer Tokenizer) (*Extractor, error) {
	if tokenizer == nil {
		return nil, errors.New("tokenizer required")
	}
	stopwords, err := parseStopwords(englishStopwords)
	if err != nil {
		return nil, err
	}
	return &Extractor{tokenizer: tokenizer, stopwords: stopwords}, nil
}

func parseStopwords(raw string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	if len(set) == 0 {
		return nil, errors.New("stopword list is empty")
	}
	return set, nil
}

// IsStopword reports whether word is in the stopword set.
func (e *Extractor) IsStopword(word string) bool {
	_, ok := e.stopwords[word]
	return ok
}

// Extract lower-cases text, tokenizes it and returns up to MaxKeywords tokens ordered by
// descending count. Ties keep first-appearance order. The result is never nil.
func (e *Extractor) Extract(text string) ([]string, error) {
	tokens, err := e.tokenizer.Tokenize(strings.ToLower(text))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if !e.keep(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	return topN(order, counts, MaxKeywords), nil
}

func (e *Extractor) keep(tok string) bool {
	return utf8.RuneCountInString(tok) >= minRunes && isAlnum(tok) && !e.IsStopword(tok)
}

// isAlnum reports whether tok is non-empty and made only of letters and numeric characters.
func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// topN picks the n highest counts. order lists each word once, by first appearance,
// and the stable sort keeps that order among equal counts.
func topN(order []string, counts map[string]int, n int) []string {
	ranked := append([]string{}, order...)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
