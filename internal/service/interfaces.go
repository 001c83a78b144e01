// Package service defines the interfaces shared between the engine and its front ends.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/newslens/internal/model"
)

// Analyzer turns pasted article text into a rendered-ready report.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*model.Report, error)
	ModelInfo() model.ModelInfo
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
