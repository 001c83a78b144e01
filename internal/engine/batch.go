package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Veraticus/newslens/internal/model"
)

// BatchItem is one document queued for analysis.
type BatchItem struct {
	Source string
	Text   string
}

// BatchResult pairs a source with its report or error.
type BatchResult struct {
	Error  error
	Report *model.Report
	Source string
}

// BatchSummary contains statistics about a batch run.
type BatchSummary struct {
	Results        []BatchResult
	Total          int
	RealCount      int
	FakeCount      int
	FailedCount    int
	ProcessingTime time.Duration
}

// AnalyzeBatch analyzes items one at a time, in order. A failed item is
// recorded and the batch continues; only context cancellation stops it
// early. progress, if non-nil, is called after each item.
func (e *Engine) AnalyzeBatch(ctx context.Context, items []BatchItem, progress func(done int)) (*BatchSummary, error) {
	start := time.Now()
	summary := &BatchSummary{
		Total:   len(items),
		Results: make([]BatchResult, 0, len(items)),
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			summary.ProcessingTime = time.Since(start)
			return summary, err
		}

		report, err := e.Analyze(ctx, item.Text)
		summary.Results = append(summary.Results, BatchResult{
			Source: item.Source,
			Report: report,
			Error:  err,
		})

		switch {
		case err != nil:
			summary.FailedCount++
			if errors.Is(err, context.Canceled) {
				summary.ProcessingTime = time.Since(start)
				return summary, err
			}
		case report.Indicators.Verdict.IsReal():
			summary.RealCount++
		default:
			summary.FakeCount++
		}

		if progress != nil {
			progress(i + 1)
		}
	}

	summary.ProcessingTime = time.Since(start)
	slog.Info("Batch analysis complete",
		"total", summary.Total,
		"real", summary.RealCount,
		"fake", summary.FakeCount,
		"failed", summary.FailedCount,
		"duration", summary.ProcessingTime)

	return summary, nil
}
