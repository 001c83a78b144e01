package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/engine"
	"github.com/schollz/progressbar/v3"
)

// BatchAnalyzer analyzes several documents in sequence.
type BatchAnalyzer interface {
	AnalyzeBatch(ctx context.Context, items []engine.BatchItem, progress func(done int)) (*engine.BatchSummary, error)
}

// RunBatch analyzes items with a progress bar written to w.
func RunBatch(ctx context.Context, w io.Writer, analyzer BatchAnalyzer, items []engine.BatchItem) (*engine.BatchSummary, error) {
	bar := newProgressBar(w, len(items))

	summary, err := analyzer.AnalyzeBatch(ctx, items, func(done int) {
		if setErr := bar.Set(done); setErr != nil {
			slog.Warn("Failed to update progress bar", "error", setErr)
		}
	})
	if finishErr := bar.Finish(); finishErr != nil {
		slog.Warn("Failed to finish progress bar", "error", finishErr)
	}

	return summary, err
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Analyzing articles...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// FormatBatchSummary renders per-file verdicts and totals.
func FormatBatchSummary(s *engine.BatchSummary) string {
	var lines string
	for _, res := range s.Results {
		if res.Error != nil {
			lines += fmt.Sprintf("  %s %s: %s\n", ErrorIcon, res.Source, common.UserMessage(res.Error))
			continue
		}
		r := res.Report
		lines += fmt.Sprintf("  %s %s: %s %.2f%% · %s %.2f%%\n",
			SuccessIcon, res.Source, r.Polarity.Label, r.Polarity.Confidence, r.Bias.Label, r.Bias.Confidence)
	}

	lines += fmt.Sprintf("\n  • Real: %d\n", s.RealCount) +
		fmt.Sprintf("  • Fake: %d\n", s.FakeCount) +
		fmt.Sprintf("  • Failed: %d\n", s.FailedCount) +
		fmt.Sprintf("  • Time taken: %s", s.ProcessingTime.Round(time.Millisecond))

	return RenderBox(fmt.Sprintf("Batch Complete (%d articles)", s.Total), lines)
}
