package zeroshot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
	"github.com/Veraticus/newslens/internal/service"
)

// Pipeline is the shared, explicitly constructed zero-shot capability.
// It is safe for concurrent use and must be closed when no longer needed.
type Pipeline struct {
	client        Client
	cache         *resultCache
	logger        *slog.Logger
	rateLimiter   *rateLimiter
	provider      string
	modelID       string
	retryOpts     service.RetryOptions
	maxInputChars int
	closeOnce     sync.Once
}

// NewPipeline builds the configured backend and wraps it.
func NewPipeline(cfg Config, logger *slog.Logger) (*Pipeline, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create zero-shot client: %v", common.ErrModelUnavailable, err)
	}
	return NewPipelineWithClient(client, cfg, logger), nil
}

// NewPipelineWithClient wraps an existing backend.
func NewPipelineWithClient(client Client, cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	provider := strings.ToLower(cfg.Provider)
	if provider == "" {
		provider = "huggingface"
	}

	return &Pipeline{
		client:        client,
		cache:         newResultCache(cfg.CacheTTL),
		logger:        logger,
		rateLimiter:   newRateLimiter(cfg.RateLimit),
		provider:      provider,
		modelID:       cfg.Model,
		retryOpts:     retryOpts,
		maxInputChars: cfg.MaxInputChars,
	}
}

// Classify scores text against labels, best-first.
func (p *Pipeline) Classify(ctx context.Context, text string, labels []string) (model.LabelScores, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no candidate labels", common.ErrClassificationFailed)
	}

	prepared := PrepareText(text, p.maxInputChars)
	if prepared == "" {
		return nil, common.ErrEmptyInput
	}

	key := cacheKey(p.modelID, labels, prepared)
	if scores, found := p.cache.get(key); found {
		common.LogDebug(p.logger, "cache hit for zero-shot request", common.Fields{
			"provider": p.provider,
			"labels":   labels,
		})
		return scores, nil
	}

	if err := p.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	var scores model.LabelScores
	err := common.WithRetry(ctx, func() error {
		var classifyErr error
		scores, classifyErr = p.client.Classify(ctx, prepared, labels)
		return classifyErr
	}, p.retryOpts)
	if err != nil {
		return nil, err
	}

	if err := scores.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrClassificationFailed, err)
	}
	scores.Sort()

	p.cache.set(key, scores)

	top := scores.Top()
	p.logger.Info("zero-shot classification complete",
		"provider", p.provider,
		"model", p.modelID,
		"top_label", top.Label,
		"score", top.Score,
		"input_chars", len([]rune(prepared)),
		"duration", time.Since(start))

	return scores, nil
}

// Provider returns the backend name.
func (p *Pipeline) Provider() string {
	return p.provider
}

// ModelID returns the configured model identifier.
func (p *Pipeline) ModelID() string {
	return p.modelID
}

// Close stops the cache janitor and releases rate-limit waiters. It is
// safe to call more than once.
func (p *Pipeline) Close() error {
	p.closeOnce.Do(func() {
		p.cache.Close()
		p.rateLimiter.Close()
	})
	return nil
}
