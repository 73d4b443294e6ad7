package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubSummarizer(t *testing.T) {
	s := StubSummarizer{}

	out, err := s.Summarize(context.Background(), Request{Text: "one two  three\nfour", MaxLength: 3})
	require.NoError(t, err)
	assert.Equal(t, "one two three", out)

	out, err = s.Summarize(context.Background(), Request{Text: "short text"})
	require.NoError(t, err)
	assert.Equal(t, "short text", out)
}

func TestInstructionCarriesBounds(t *testing.T) {
	text := instruction(Request{MaxLength: 130, MinLength: 30})
	assert.Contains(t, text, "between 30 and 130 tokens")
	assert.Equal(t, int64(260), completionCeiling(130))
	assert.Equal(t, int64(2*DefaultMaxLength), completionCeiling(0))
}

func TestOpenAISummarize(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "  A summary.  "}}]
		}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "gpt-4o-mini", openaioption.WithBaseURL(srv.URL+"/"), openaioption.WithMaxRetries(0))
	require.NoError(t, err)

	out, err := c.Summarize(context.Background(), Request{Text: "text", MaxLength: 130, MinLength: 30})
	require.NoError(t, err)
	assert.Equal(t, "A summary.", out)
	assert.Equal(t, float64(0), body["temperature"])
	assert.Equal(t, float64(260), body["max_completion_tokens"])
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("", "")
	assert.EqualError(t, err, "api key required")
}

func TestAnthropicSummarize(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [{"type": "text", "text": "A summary."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 3}
		}`))
	}))
	defer srv.Close()

	c, err := NewAnthropicClient("sk-ant-test", "", anthropicoption.WithBaseURL(srv.URL+"/"), anthropicoption.WithMaxRetries(0))
	require.NoError(t, err)

	out, err := c.Summarize(context.Background(), Request{Text: "text", MaxLength: 100, MinLength: 20})
	require.NoError(t, err)
	assert.Equal(t, "A summary.", out)
	assert.Equal(t, float64(0), body["temperature"])
	assert.Equal(t, float64(200), body["max_tokens"])
}

func TestNewAnthropicClientRequiresKey(t *testing.T) {
	_, err := NewAnthropicClient("", "")
	assert.EqualError(t, err, "api key required")
}
