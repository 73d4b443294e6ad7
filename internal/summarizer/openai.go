package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, model openai.ChatModel, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, req Request) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	params := openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            buildMessages(instruction(req), req.Text),
		MaxCompletionTokens: openai.Int(completionCeiling(req.MaxLength)),
	}
	if !req.DoSample {
		params.Temperature = openai.Float(0)
	}
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

// instruction phrases the length bounds for chat models, which have no native
// min/max summary length.
func instruction(req Request) string {
	return fmt.Sprintf(
		"You are a news-style abstractive summarizer. Summarize the user's text in plain prose, "+
			"between %d and %d tokens long. Reply with the summary only.",
		req.MinLength, req.MaxLength,
	)
}

// completionCeiling leaves headroom over the requested maximum so replies are not cut mid-sentence.
func completionCeiling(maxLength int) int64 {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return int64(maxLength) * 2
}
