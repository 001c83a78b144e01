package zeroshot

import (
	"testing"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Scientists confirm water is wet.", []string{"Real News", "Fake News"})

	assert.Contains(t, prompt, "- Real News\n")
	assert.Contains(t, prompt, "- Fake News\n")
	assert.Contains(t, prompt, "Scientists confirm water is wet.")
}

func TestParseLabelScores(t *testing.T) {
	labels := []string{"Left Bias", "Right Bias", "Neutral"}

	tests := []struct {
		name      string
		content   string
		wantTop   string
		wantScore float64
		wantErr   bool
	}{
		{
			name:      "plain JSON",
			content:   `{"scores": {"Left Bias": 0.2, "Right Bias": 0.1, "Neutral": 0.7}}`,
			wantTop:   "Neutral",
			wantScore: 0.7,
		},
		{
			name:      "case-insensitive labels and renormalization",
			content:   `{"scores": {"left bias": 3, "RIGHT BIAS": 1}}`,
			wantTop:   "Left Bias",
			wantScore: 0.75,
		},
		{
			name:      "markdown fence",
			content:   "```json\n{\"scores\": {\"Neutral\": 1}}\n```",
			wantTop:   "Neutral",
			wantScore: 1,
		},
		{
			name:      "negative scores clamp to zero",
			content:   `{"scores": {"Left Bias": -1, "Right Bias": 1}}`,
			wantTop:   "Right Bias",
			wantScore: 1,
		},
		{name: "not JSON", content: "Neutral", wantErr: true},
		{name: "no scores", content: `{"scores": {}}`, wantErr: true},
		{name: "only unknown labels", content: `{"scores": {"Centrist": 1}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := parseLabelScores(tt.content, labels)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrClassificationFailed)
				assert.False(t, common.IsRetryable(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, scores, len(labels))
			assert.Equal(t, tt.wantTop, scores.Top().Label)
			assert.InDelta(t, tt.wantScore, scores.Top().Score, 1e-9)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no fence", input: `  {"a":1} `, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
		})
	}
}
