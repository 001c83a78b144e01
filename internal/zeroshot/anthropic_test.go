package zeroshot

import (
	"context"
	"net/http"
	"testing"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicClient(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	require.Error(t, err)

	client, err := newAnthropicClient(Config{APIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", client.(*anthropicClient).model)
}

func TestAnthropicClassify(t *testing.T) {
	var gotKey, gotVersion, gotPath string

	server := createMockServer(t, http.StatusOK, map[string]any{
		"id":          "msg_1",
		"model":       "claude-3-5-haiku-latest",
		"stop_reason": "end_turn",
		"content": []map[string]string{
			{"type": "text", "text": `{"scores": {"Left Bias": 0.1, "Right Bias": 0.2, "Neutral": 0.7}}`},
		},
	}, func(r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		gotPath = r.URL.Path
	})

	client, err := newAnthropicClient(Config{APIKey: "ak", BaseURL: server.URL})
	require.NoError(t, err)

	scores, err := client.Classify(context.Background(), "text", []string{"Left Bias", "Right Bias", "Neutral"})
	require.NoError(t, err)

	assert.Equal(t, "ak", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	assert.Equal(t, "/messages", gotPath)
	assert.Equal(t, "Neutral", scores.Top().Label)
	assert.InDelta(t, 0.7, scores.Top().Score, 1e-9)
}

func TestAnthropicClassifyEmptyContent(t *testing.T) {
	server := createMockServer(t, http.StatusOK, map[string]any{"content": []any{}}, nil)
	client, err := newAnthropicClient(Config{APIKey: "ak", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "text", []string{"a"})
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
}
