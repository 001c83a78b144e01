package detector

import (
	"context"
	"fmt"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
)

// BiasDetector labels text as Left Bias, Right Bias or Neutral.
type BiasDetector struct {
	zs ZeroShot
}

// NewBiasDetector creates a detector backed by zs.
func NewBiasDetector(zs ZeroShot) *BiasDetector {
	return &BiasDetector{zs: zs}
}

// Classify returns the top bias label and its confidence percentage.
func (d *BiasDetector) Classify(ctx context.Context, text string) (model.BiasResult, error) {
	best, err := top(ctx, d.zs, text, model.BiasCandidates)
	if err != nil {
		return model.BiasResult{}, fmt.Errorf("bias: %w", err)
	}

	label, err := model.ParseBias(best.Label)
	if err != nil {
		return model.BiasResult{}, fmt.Errorf("bias: %w: %v", common.ErrClassificationFailed, err)
	}

	return model.BiasResult{
		Label:      label,
		Confidence: model.ToConfidence(best.Score),
	}, nil
}
