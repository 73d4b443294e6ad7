package keywords

import (
	"errors"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockExtractor(t *testing.T, tokens []string) *Extractor {
	t.Helper()
	tok := new(MockTokenizer)
	tok.On("Tokenize", mock.Anything).Return(tokens, nil)
	e, err := New(tok)
	require.NoError(t, err)
	return e
}

func TestStopwordsLoaded(t *testing.T) {
	e, err := New(NewProseTokenizer())
	require.NoError(t, err)

	assert.Len(t, e.stopwords, 179)
	for _, w := range []string{"the", "and", "about", "because", "themselves", "should've"} {
		assert.True(t, e.IsStopword(w), w)
	}
	assert.False(t, e.IsStopword("summary"))
}

func TestNewRequiresTokenizer(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestParseStopwordsEmpty(t *testing.T) {
	_, err := parseStopwords("\n \n")
	assert.EqualError(t, err, "stopword list is empty")
}

func TestExtractLowercasesBeforeTokenizing(t *testing.T) {
	tok := new(MockTokenizer)
	tok.On("Tokenize", "hello world").Return([]string{"hello", "world"}, nil).Once()
	e, err := New(tok)
	require.NoError(t, err)

	got, err := e.Extract("Hello WORLD")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got)
	tok.AssertExpectations(t)
}

func TestExtractFilters(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"short tokens dropped", []string{"cat", "dog", "bird"}, []string{"bird"}},
		{"stopwords dropped", []string{"about", "against", "between", "rivers"}, []string{"rivers"}},
		{"punctuation dropped", []string{"well-known", "n't", "...", "2024"}, []string{"2024"}},
		{"numeric characters count as alphanumeric", []string{"½¾23", "ⅻⅻⅻⅻ", "abc²"}, []string{"½¾23", "ⅻⅻⅻⅻ", "abc²"}},
		{"rune length counts characters", []string{"été", "éclat"}, []string{"éclat"}},
		{"nothing survives", []string{"the", "the", "the", "cat", "cat", "dog"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newMockExtractor(t, tt.tokens).Extract("ignored")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRanking(t *testing.T) {
	tokens := []string{
		"beta", "alpha", "gamma", "alpha", "delta", "beta", "alpha",
		"epsilon", "gamma",
	}
	got, err := newMockExtractor(t, tokens).Extract("ignored")
	require.NoError(t, err)

	// alpha=3, beta=2, gamma=2 (beta first seen), delta=1, epsilon=1
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta", "epsilon"}, got)
}

func TestExtractCapsAtTen(t *testing.T) {
	tokens := []string{
		"one1", "two2", "three", "four", "five", "six6", "seven", "eight", "nine", "tenx", "eleven", "twelve",
		"twelve", "twelve",
	}

	got, err := newMockExtractor(t, tokens).Extract("ignored")
	require.NoError(t, err)

	require.Len(t, got, MaxKeywords)
	assert.Equal(t, "twelve", got[0])
	assert.Equal(t, []string{"one1", "two2", "three", "four", "five", "six6", "seven", "eight", "nine"}, got[1:])
}

func TestExtractTokenizerError(t *testing.T) {
	tok := new(MockTokenizer)
	tok.On("Tokenize", mock.Anything).Return(nil, errors.New("tokenizer crashed"))
	e, err := New(tok)
	require.NoError(t, err)

	_, err = e.Extract("text")
	assert.ErrorContains(t, err, "tokenizer crashed")
}

func TestExtractWithProse(t *testing.T) {
	e, err := New(NewProseTokenizer())
	require.NoError(t, err)

	t.Run("short stopword-only text is empty", func(t *testing.T) {
		got, err := e.Extract("the the the cat cat dog")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("keyword properties", func(t *testing.T) {
		text := strings.Repeat("Go programs use goroutines and channels. ", 3) +
			"Channels connect concurrent goroutines, while the scheduler multiplexes goroutines onto threads. " +
			"Memory, networking, profiling, testing, tooling, modules, generics and interfaces are also covered."

		got, err := e.Extract(text)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), MaxKeywords)
		assert.Equal(t, "goroutines", got[0])

		for _, kw := range got {
			assert.Equal(t, strings.ToLower(kw), kw)
			assert.GreaterOrEqual(t, utf8.RuneCountInString(kw), 4, kw)
			assert.False(t, e.IsStopword(kw), kw)
			for _, r := range kw {
				assert.True(t, unicode.IsLetter(r) || unicode.IsNumber(r), kw)
			}
		}
	})
}
