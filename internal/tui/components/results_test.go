package components

import (
	"strings"
	"testing"

	"github.com/Veraticus/newslens/internal/model"
	"github.com/Veraticus/newslens/internal/tui/themes"
	"github.com/stretchr/testify/assert"
)

func testReport(label model.Polarity, confidence float64) *model.Report {
	polarity := model.PolarityResult{Label: label, Confidence: confidence}
	return &model.Report{
		Polarity:   polarity,
		Bias:       model.BiasResult{Label: model.BiasNeutral, Confidence: 71.05},
		Indicators: model.DeriveIndicators(polarity),
	}
}

func TestGaugeCells(t *testing.T) {
	tests := []struct {
		confidence float64
		width      int
		want       int
	}{
		{confidence: 0, width: 20, want: 0},
		{confidence: 50, width: 20, want: 10},
		{confidence: 100, width: 20, want: 20},
		{confidence: 150, width: 20, want: 20},
		{confidence: -5, width: 20, want: 0},
		{confidence: 50, width: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gaugeCells(tt.confidence, tt.width))
	}
}

func TestGauge(t *testing.T) {
	out := Gauge(themes.Default, 75, 20)

	assert.Contains(t, out, "75.00")
	assert.Equal(t, 15, strings.Count(out, fullCell))
	assert.Equal(t, 5, strings.Count(out, emptyCell))
}

func TestVerdictCard(t *testing.T) {
	assert.Contains(t, VerdictCard(themes.Default, model.PolarityReal, 30), "REAL NEWS")
	assert.Contains(t, VerdictCard(themes.Default, model.PolarityFake, 30), "FAKE NEWS")
}

func TestResults(t *testing.T) {
	out := Results(themes.Default, testReport(model.PolarityFake, 62.5), 80)

	assert.Contains(t, out, "FAKE NEWS")
	assert.Contains(t, out, "62.50")
	assert.Contains(t, out, "News Credibility: Medium")
	assert.Contains(t, out, "Risk Level: High Risk")
	assert.Contains(t, out, "Bias: Neutral (71.05% confidence)")
	assert.Contains(t, out, model.PredictedLabel)
	assert.Contains(t, out, model.OppositeLabel)
	assert.Contains(t, out, "37.50")
	assert.Contains(t, out, "Source Reliability")
}

func TestModelInfo(t *testing.T) {
	out := ModelInfo(themes.Default, model.NewModelInfo("huggingface", "facebook/bart-large-mnli"))

	assert.Contains(t, out, "facebook/bart-large-mnli")
	assert.Contains(t, out, "Real News / Fake News")
	assert.Contains(t, out, "Left Bias / Right Bias / Neutral")
	assert.Contains(t, out, "Framework: Hugging Face Transformers")
	assert.Contains(t, out, "Architecture: BART (Transformer)")
	assert.Contains(t, out, "Technology Stack")
	assert.Contains(t, out, "NLP Engine: Hugging Face Transformers")
}
