// Package engine implements the analysis engine shared by every front end.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
	"github.com/google/uuid"
)

// DefaultExcerptLength bounds the input excerpt kept on a report.
const DefaultExcerptLength = 160

// Engine runs the polarity and bias classifiers and derives the dashboard
// indicators. It holds no per-request state.
type Engine struct {
	polarity   PolarityClassifier
	bias       BiasClassifier
	logger     *slog.Logger
	now        func() time.Time
	info       model.ModelInfo
	excerptLen int
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithExcerptLength overrides DefaultExcerptLength.
func WithExcerptLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.excerptLen = n
		}
	}
}

// New creates an engine with the given classifiers.
func New(polarity PolarityClassifier, bias BiasClassifier, info model.ModelInfo, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		polarity:   polarity,
		bias:       bias,
		info:       info,
		logger:     logger,
		now:        time.Now,
		excerptLen: DefaultExcerptLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze classifies text for polarity and then bias. Empty or
// whitespace-only text returns common.ErrEmptyInput without calling either
// classifier. The report takes its id from common.RequestID(ctx) when set.
// Classifier failures are logged here; callers only render them.
func (e *Engine) Analyze(ctx context.Context, text string) (*model.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyInput
	}

	start := e.now()
	id := common.RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	logger := e.logger.With("request_id", id)

	polarity, err := e.polarity.Classify(ctx, text)
	if err != nil {
		common.LogError(logger, err, "polarity classification failed", nil)
		return nil, fmt.Errorf("failed to classify polarity: %w", err)
	}

	bias, err := e.bias.Classify(ctx, text)
	if err != nil {
		common.LogError(logger, err, "bias classification failed", nil)
		return nil, fmt.Errorf("failed to classify bias: %w", err)
	}

	report := &model.Report{
		ID:         id,
		AnalyzedAt: start,
		Excerpt:    Excerpt(text, e.excerptLen),
		Polarity:   polarity,
		Bias:       bias,
		Indicators: model.DeriveIndicators(polarity),
		Duration:   e.now().Sub(start),
	}

	common.LogInfo(logger, "Analysis complete", common.Fields{
		"polarity":            polarity.Label,
		"polarity_confidence": polarity.Confidence,
		"bias":                bias.Label,
		"bias_confidence":     bias.Confidence,
		"credibility":         report.Indicators.Credibility,
		"duration":            report.Duration,
	})

	return report, nil
}

// ModelInfo describes the model behind both classifiers.
func (e *Engine) ModelInfo() model.ModelInfo {
	return e.info
}

// Excerpt collapses whitespace and shortens text to at most n runes,
// marking truncation with an ellipsis.
func Excerpt(text string, n int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if n <= 0 || len(runes) <= n {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
