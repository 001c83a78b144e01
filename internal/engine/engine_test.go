package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Analyze(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantVerdict     model.Polarity
		wantBias        model.Bias
		wantCredibility model.Credibility
		wantRisk        model.Risk
		wantBand        model.Band
		wantComparison  [2]float64
	}{
		{
			name:            "real news",
			text:            "The city council approved the transit budget on Tuesday.",
			wantVerdict:     model.PolarityReal,
			wantBias:        model.BiasNeutral,
			wantCredibility: model.CredibilityHigh,
			wantRisk:        model.RiskLow,
			wantBand:        model.BandGreen,
			wantComparison:  [2]float64{87.35, 12.65},
		},
		{
			name:            "fake news",
			text:            "Shocking: aliens endorse conservative candidate!",
			wantVerdict:     model.PolarityFake,
			wantBias:        model.BiasRight,
			wantCredibility: model.CredibilityHigh,
			wantRisk:        model.RiskHigh,
			wantBand:        model.BandGreen,
			wantComparison:  [2]float64{93.12, 6.88},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, mock := NewMockEngine()

			report, err := eng.Analyze(context.Background(), tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.wantVerdict, report.Polarity.Label)
			assert.Equal(t, tt.wantVerdict, report.Indicators.Verdict)
			assert.Equal(t, tt.wantBias, report.Bias.Label)
			assert.Equal(t, tt.wantCredibility, report.Indicators.Credibility)
			assert.Equal(t, tt.wantRisk, report.Indicators.Risk)
			assert.Equal(t, tt.wantBand, report.Indicators.Band)
			assert.InDelta(t, tt.wantComparison[0], report.Indicators.Comparison[0], 1e-9)
			assert.InDelta(t, tt.wantComparison[1], report.Indicators.Comparison[1], 1e-9)
			assert.NotEmpty(t, report.ID)

			calls := mock.GetCalls()
			require.Len(t, calls, 2)
			assert.Equal(t, "polarity", calls[0].Kind)
			assert.Equal(t, "bias", calls[1].Kind)
		})
	}
}

func TestEngine_AnalyzeEmptyInput(t *testing.T) {
	eng, mock := NewMockEngine()

	for _, text := range []string{"", "   ", "\n\t"} {
		report, err := eng.Analyze(context.Background(), text)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, common.ErrEmptyInput)
	}
	assert.Equal(t, 0, mock.CallCount())
}

func TestEngine_AnalyzeErrors(t *testing.T) {
	t.Run("polarity failure skips bias", func(t *testing.T) {
		eng, mock := NewMockEngine()
		mock.FailPolarity(common.ErrModelUnavailable)

		_, err := eng.Analyze(context.Background(), "text")
		assert.ErrorIs(t, err, common.ErrModelUnavailable)
		assert.Equal(t, 1, mock.CallCount())
	})

	t.Run("bias failure", func(t *testing.T) {
		eng, mock := NewMockEngine()
		mock.FailBias(common.ErrClassificationFailed)

		_, err := eng.Analyze(context.Background(), "text")
		assert.ErrorIs(t, err, common.ErrClassificationFailed)
		assert.Equal(t, 2, mock.CallCount())
	})
}

func TestEngine_ReportMetadata(t *testing.T) {
	mock := NewMockClassifier()
	ticks := []time.Time{
		time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 12, 0, 2, 0, time.UTC),
	}
	clock := func() time.Time {
		now := ticks[0]
		if len(ticks) > 1 {
			ticks = ticks[1:]
		}
		return now
	}

	eng := New(mock.Polarity(), mock.Bias(), model.NewModelInfo("huggingface", "facebook/bart-large-mnli"), nil,
		WithClock(clock), WithExcerptLength(10))

	report, err := eng.Analyze(context.Background(), "The   council approved\nthe budget.")
	require.NoError(t, err)

	assert.Equal(t, "The counci…", report.Excerpt)
	assert.Equal(t, 2*time.Second, report.Duration)
	assert.Equal(t, "facebook/bart-large-mnli", eng.ModelInfo().ModelID)
	assert.Equal(t, model.MethodZeroShot, eng.ModelInfo().Method)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", Excerpt("  short \n text ", 50))
	assert.Equal(t, "abc…", Excerpt("abcdef", 3))
	assert.Equal(t, "abcdef", Excerpt("abcdef", 0))
}

func TestEngine_AnalyzeBatch(t *testing.T) {
	eng, mock := NewMockEngine()
	mock.Reset()

	items := []BatchItem{
		{Source: "a.txt", Text: "Council approves budget."},
		{Source: "b.txt", Text: "Miracle secret cure found!"},
		{Source: "c.txt", Text: "   "},
	}

	var progress []int
	summary, err := eng.AnalyzeBatch(context.Background(), items, func(done int) {
		progress = append(progress, done)
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.RealCount)
	assert.Equal(t, 1, summary.FakeCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.Equal(t, []int{1, 2, 3}, progress)

	require.Len(t, summary.Results, 3)
	assert.Equal(t, "c.txt", summary.Results[2].Source)
	assert.True(t, errors.Is(summary.Results[2].Error, common.ErrEmptyInput))
}

func TestEngine_AnalyzeBatchCanceled(t *testing.T) {
	eng, _ := NewMockEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := eng.AnalyzeBatch(ctx, []BatchItem{{Source: "a", Text: "x"}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Results)
}

func TestEngine_AnalyzeUsesContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mock := NewMockClassifier()
	eng := New(mock.Polarity(), mock.Bias(), model.NewModelInfo("static", "mock"), logger)

	ctx := common.WithRequestID(context.Background(), "req-7")
	report, err := eng.Analyze(ctx, "The council met on Monday.")
	require.NoError(t, err)
	assert.Equal(t, "req-7", report.ID)
	assert.Contains(t, buf.String(), "request_id=req-7")

	buf.Reset()
	mock.FailBias(common.ErrModelUnavailable)
	_, err = eng.Analyze(ctx, "The council met on Monday.")
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "level=ERROR"))
	assert.Contains(t, buf.String(), "request_id=req-7")
}
