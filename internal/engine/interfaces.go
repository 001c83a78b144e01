package engine

import (
	"context"

	"github.com/Veraticus/newslens/internal/model"
)

// PolarityClassifier defines the contract for real/fake detection.
type PolarityClassifier interface {
	Classify(ctx context.Context, text string) (model.PolarityResult, error)
}

// BiasClassifier defines the contract for political-leaning detection.
type BiasClassifier interface {
	Classify(ctx context.Context, text string) (model.BiasResult, error)
}
