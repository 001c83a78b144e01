package zeroshot

import (
	"context"
	"time"

	"github.com/Veraticus/newslens/internal/model"
)

// Client defines the interface for zero-shot classification providers.
type Client interface {
	Classify(ctx context.Context, text string, labels []string) (model.LabelScores, error)
}

// Config holds configuration for a zero-shot backend and its pipeline.
type Config struct {
	StaticScores  map[string]float64
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       time.Duration
	RetryDelay    time.Duration
	CacheTTL      time.Duration
	Temperature   float64
	MaxRetries    int
	RateLimit     int
	MaxTokens     int
	MaxInputChars int
}
