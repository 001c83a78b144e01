package zeroshot

import (
	"context"
	"strings"

	"github.com/Veraticus/newslens/internal/model"
)

// staticClient answers from a fixed label->score table. Labels missing
// from the table score zero; an empty table yields a uniform distribution.
type staticClient struct {
	scores map[string]float64
}

func newStaticClient(cfg Config) Client {
	scores := make(map[string]float64, len(cfg.StaticScores))
	for label, score := range cfg.StaticScores {
		scores[strings.ToLower(strings.TrimSpace(label))] = score
	}
	return &staticClient{scores: scores}
}

// Classify implements Client.
func (c *staticClient) Classify(ctx context.Context, _ string, labels []string) (model.LabelScores, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := make(model.LabelScores, len(labels))
	var total float64
	for i, label := range labels {
		s := c.scores[strings.ToLower(label)]
		scores[i] = model.LabelScore{Label: label, Score: s}
		total += s
	}

	if total <= 0 {
		for i := range scores {
			scores[i].Score = 1
		}
	}

	if err := normalize(scores); err != nil {
		return nil, err
	}
	return finishScores(scores)
}
