package zeroshot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
)

const defaultOpenAIURL = "https://api.openai.com/v1"

// openAIClient implements the Client interface on top of chat completions.
type openAIClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newOpenAIClient creates a new OpenAI API client.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	modelID := cfg.Model
	if modelID == "" {
		modelID = "gpt-4o-mini"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 150
	}

	return &openAIClient{
		apiKey:      cfg.APIKey,
		model:       modelID,
		baseURL:     strings.TrimRight(baseURL, "/"),
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		httpClient:  newHTTPClient(cfg.Timeout),
	}, nil
}

// Classify asks the chat model to score every candidate label.
func (c *openAIClient) Classify(ctx context.Context, text string, labels []string) (model.LabelScores, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildPrompt(text, labels)},
		},
		"temperature":     c.temperature,
		"max_tokens":      c.maxTokens,
		"response_format": map[string]string{"type": "json_object"},
	}

	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	body, err := postJSON(ctx, c.httpClient, "OpenAI", c.baseURL+"/chat/completions", headers, requestBody)
	if err != nil {
		return nil, err
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, common.Permanent(fmt.Errorf("%w: failed to parse response: %v", common.ErrClassificationFailed, err))
	}

	if len(response.Choices) == 0 {
		return nil, common.Permanent(fmt.Errorf("%w: no completion choices returned", common.ErrClassificationFailed))
	}

	return parseLabelScores(response.Choices[0].Message.Content, labels)
}

// openAIResponse represents the OpenAI API response structure.
type openAIResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}
