package keywords

import (
	"github.com/tsawler/prose/v3"
)

// Tokenizer splits text into word-level tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// ProseTokenizer tokenizes with the prose NLP pipeline, running only its tokenizer stage.
type ProseTokenizer struct{}

// NewProseTokenizer creates a prose-backed tokenizer.
func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

func (t *ProseTokenizer) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out, nil
}
