// Package detector turns raw zero-shot rankings into normalized polarity
// and bias results.
package detector

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
)

// ZeroShot is the capability both detectors delegate to.
type ZeroShot interface {
	Classify(ctx context.Context, text string, labels []string) (model.LabelScores, error)
}

// top runs the classification and returns the best-ranked label.
func top(ctx context.Context, zs ZeroShot, text string, labels []string) (*model.LabelScore, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyInput
	}

	scores, err := zs.Classify(ctx, text, labels)
	if err != nil {
		return nil, err
	}

	best := scores.Top()
	if best == nil {
		return nil, fmt.Errorf("%w: model returned no labels", common.ErrClassificationFailed)
	}
	return best, nil
}
