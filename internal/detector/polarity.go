package detector

import (
	"context"
	"fmt"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
)

// PolarityDetector labels text as REAL NEWS or FAKE NEWS.
type PolarityDetector struct {
	zs ZeroShot
}

// NewPolarityDetector creates a detector backed by zs.
func NewPolarityDetector(zs ZeroShot) *PolarityDetector {
	return &PolarityDetector{zs: zs}
}

// Classify returns the top polarity label and its confidence percentage.
func (d *PolarityDetector) Classify(ctx context.Context, text string) (model.PolarityResult, error) {
	best, err := top(ctx, d.zs, text, model.PolarityCandidates)
	if err != nil {
		return model.PolarityResult{}, fmt.Errorf("polarity: %w", err)
	}

	label, err := model.ParsePolarity(best.Label)
	if err != nil {
		return model.PolarityResult{}, fmt.Errorf("polarity: %w: %v", common.ErrClassificationFailed, err)
	}

	return model.PolarityResult{
		Label:      label,
		Confidence: model.ToConfidence(best.Score),
	}, nil
}
