package zeroshot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingClient records calls and replays queued answers.
type countingClient struct {
	errs     []error
	scores   model.LabelScores
	lastText string
	calls    int
	mu       sync.Mutex
}

func (c *countingClient) Classify(_ context.Context, text string, _ []string) (model.LabelScores, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	c.lastText = text
	if len(c.errs) > 0 {
		err := c.errs[0]
		c.errs = c.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return c.scores.Clone(), nil
}

func (c *countingClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func testPipeline(t *testing.T, client Client) *Pipeline {
	t.Helper()
	p := NewPipelineWithClient(client, Config{
		Provider:   "static",
		Model:      "test-model",
		RetryDelay: time.Millisecond,
		MaxRetries: 3,
	}, nil)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPipelineClassify(t *testing.T) {
	client := &countingClient{scores: model.LabelScores{
		{Label: "Fake News", Score: 0.3},
		{Label: "Real News", Score: 0.7},
	}}
	p := testPipeline(t, client)

	scores, err := p.Classify(context.Background(), "  The mayor opened a bridge.  ", polarityLabels)
	require.NoError(t, err)

	assert.Equal(t, "Real News", scores.Top().Label)
	assert.Equal(t, "The mayor opened a bridge.", client.lastText)
	assert.Equal(t, "static", p.Provider())
	assert.Equal(t, "test-model", p.ModelID())
}

func TestPipelineCachesResults(t *testing.T) {
	client := &countingClient{scores: model.LabelScores{{Label: "Real News", Score: 1}}}
	p := testPipeline(t, client)

	for i := 0; i < 3; i++ {
		_, err := p.Classify(context.Background(), "same article", polarityLabels)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, client.callCount())

	_, err := p.Classify(context.Background(), "same article", []string{"Left Bias", "Right Bias", "Neutral"})
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())
}

func TestPipelineEmptyInput(t *testing.T) {
	client := &countingClient{}
	p := testPipeline(t, client)

	for _, text := range []string{"", "   ", "\n\t\n", "\x00"} {
		_, err := p.Classify(context.Background(), text, polarityLabels)
		assert.ErrorIs(t, err, common.ErrEmptyInput)
	}
	assert.Equal(t, 0, client.callCount())
}

func TestPipelineNoLabels(t *testing.T) {
	p := testPipeline(t, &countingClient{})

	_, err := p.Classify(context.Background(), "text", nil)
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
}

func TestPipelineRetries(t *testing.T) {
	t.Run("transient failures are retried", func(t *testing.T) {
		client := &countingClient{
			errs: []error{
				common.Retryable(fmt.Errorf("%w: loading", common.ErrModelUnavailable)),
				common.Retryable(fmt.Errorf("%w: loading", common.ErrModelUnavailable)),
			},
			scores: model.LabelScores{{Label: "Neutral", Score: 1}},
		}
		p := testPipeline(t, client)

		scores, err := p.Classify(context.Background(), "text", []string{"Neutral"})
		require.NoError(t, err)
		assert.Equal(t, "Neutral", scores.Top().Label)
		assert.Equal(t, 3, client.callCount())
	})

	t.Run("permanent failures are not", func(t *testing.T) {
		client := &countingClient{
			errs: []error{common.Permanent(fmt.Errorf("%w: bad token", common.ErrModelUnavailable))},
		}
		p := testPipeline(t, client)

		_, err := p.Classify(context.Background(), "text", []string{"Neutral"})
		assert.ErrorIs(t, err, common.ErrModelUnavailable)
		assert.Equal(t, 1, client.callCount())
	})

	t.Run("exhausted retries keep the cause", func(t *testing.T) {
		cause := common.Retryable(fmt.Errorf("%w: down", common.ErrModelUnavailable))
		client := &countingClient{errs: []error{cause, cause, cause}}
		p := testPipeline(t, client)

		_, err := p.Classify(context.Background(), "text", []string{"Neutral"})
		assert.ErrorIs(t, err, common.ErrMaxRetries)
		assert.ErrorIs(t, err, common.ErrModelUnavailable)
		assert.Equal(t, 3, client.callCount())
	})
}

func TestPipelineRejectsInvalidScores(t *testing.T) {
	client := &countingClient{scores: model.LabelScores{{Label: "Neutral", Score: 1.5}}}
	p := testPipeline(t, client)

	_, err := p.Classify(context.Background(), "text", []string{"Neutral"})
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
}

func TestPipelineOverHuggingFace(t *testing.T) {
	var mu sync.Mutex
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Model is currently loading","estimated_time":1}`))
			return
		}
		_, _ = w.Write([]byte(`{"sequence":"x","labels":["Fake News","Real News"],"scores":[0.9312,0.0688]}`))
	}))
	defer server.Close()

	p, err := NewPipeline(Config{
		Provider:   "huggingface",
		BaseURL:    server.URL,
		RetryDelay: time.Millisecond,
	}, nil)
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	scores, err := p.Classify(context.Background(), "Aliens endorse candidate", polarityLabels)
	require.NoError(t, err)
	assert.Equal(t, "Fake News", scores.Top().Label)
	assert.Equal(t, 2, requests)
}

func TestNewPipelineBadProvider(t *testing.T) {
	_, err := NewPipeline(Config{Provider: "openai"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrModelUnavailable))
}

func TestPipelineCloseIsIdempotent(t *testing.T) {
	p := NewPipelineWithClient(&countingClient{}, Config{}, nil)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}
