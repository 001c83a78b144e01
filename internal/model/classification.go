package model

import (
	"math"
	"time"
)

// PolarityResult is the outcome of the real/fake classifier.
type PolarityResult struct {
	Label      Polarity `json:"label"`
	Confidence float64  `json:"confidence"`
}

// BiasResult is the outcome of the bias classifier.
type BiasResult struct {
	Label      Bias    `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Report is everything rendered for a single analysis. It is never stored.
type Report struct {
	AnalyzedAt time.Time      `json:"analyzed_at"`
	ID         string         `json:"id"`
	Excerpt    string         `json:"excerpt"`
	Polarity   PolarityResult `json:"polarity"`
	Bias       BiasResult     `json:"bias"`
	Indicators Indicators     `json:"indicators"`
	Duration   time.Duration  `json:"duration_ns"`
}

// ToConfidence converts a model probability into a percentage in [0,100]
// rounded to two decimals.
func ToConfidence(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return round2(score * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
