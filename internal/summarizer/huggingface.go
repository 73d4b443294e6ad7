package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultInferenceTimeout = 120 * time.Second

// HuggingFaceClient calls a Hugging Face Inference endpoint serving a summarization model.
type HuggingFaceClient struct {
	endpoint string
	token    string
	client   *http.Client
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHuggingFaceClient builds a client for baseURL/models/<model>.
func NewHuggingFaceClient(baseURL, model, token string) (*HuggingFaceClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("huggingface: base url required")
	}
	if model == "" {
		return nil, fmt.Errorf("huggingface: model required")
	}
	return &HuggingFaceClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/models/" + model,
		token:    token,
		client:   &http.Client{Timeout: defaultInferenceTimeout},
	}, nil
}

func (c *HuggingFaceClient) Summarize(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: req.Text,
		Parameters: hfParameters{
			MaxLength: req.MaxLength,
			MinLength: req.MinLength,
			DoSample:  req.DoSample,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("huggingface: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("huggingface: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("huggingface: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("huggingface: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("huggingface: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return "", fmt.Errorf("huggingface: unexpected status %d", resp.StatusCode)
	}

	var out []hfSummary
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("huggingface: decode response: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("huggingface: no summary returned")
	}
	return out[0].SummaryText, nil
}
