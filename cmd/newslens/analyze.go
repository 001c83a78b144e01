package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/newslens/internal/cli"
	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/config"
	"github.com/Veraticus/newslens/internal/engine"
	"github.com/Veraticus/newslens/internal/model"
	"github.com/spf13/cobra"
)

// maxStdinBytes bounds article text piped on stdin.
const maxStdinBytes = 1 << 20

type analyzeOptions struct {
	files   []string
	jsonOut bool
}

// batchEntry is the JSON shape of one batch result.
type batchEntry struct {
	Report *model.Report `json:"report,omitempty"`
	Source string        `json:"source"`
	Error  string        `json:"error,omitempty"`
}

func analyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Classify a news article as real or fake and detect its bias",
		Long: `Analyze news text with the configured zero-shot model.

Text is taken from the arguments, from one or more --file flags, or from
stdin when neither is given. Several files are analyzed one after another
with a progress bar and a summary.`,
		Example: `  newslens analyze "Scientists confirm the new vaccine passed phase 3 trials"
  newslens analyze --file article.txt --json
  newslens analyze --file a.txt --file b.txt
  pbpaste | newslens analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "read article text from a file (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), len(opts.files) > 1)

	items, err := collectInput(ctx, cmd.InOrStdin(), args, opts.files)
	if err != nil {
		return err
	}

	if len(items) > 1 {
		return analyzeBatch(ctx, cmd, b.engine, items, opts.jsonOut)
	}

	report, err := b.engine.Analyze(ctx, items[0].Text)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(common.UserMessage(err)))
		return fmt.Errorf("analysis failed: %w", err)
	}

	if opts.jsonOut {
		return cli.WriteJSON(cmd.OutOrStdout(), report)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatReport(report))
	return nil
}

func analyzeBatch(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, items []engine.BatchItem, jsonOut bool) error {
	summary, err := cli.RunBatch(ctx, cmd.ErrOrStderr(), eng, items)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	if jsonOut {
		entries := make([]batchEntry, 0, len(summary.Results))
		for _, r := range summary.Results {
			entry := batchEntry{Source: r.Source, Report: r.Report}
			if r.Error != nil {
				entry.Error = common.UserMessage(r.Error)
			}
			entries = append(entries, entry)
		}
		if err := cli.WriteJSON(cmd.OutOrStdout(), entries); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatBatchSummary(summary))
	}

	if summary.FailedCount > 0 {
		return fmt.Errorf("%d of %d analyses failed", summary.FailedCount, summary.Total)
	}
	return nil
}

// collectInput resolves article text from files, arguments or stdin, in that order.
func collectInput(ctx context.Context, stdin io.Reader, args, files []string) ([]engine.BatchItem, error) {
	if len(files) > 0 {
		items := make([]engine.BatchItem, 0, len(files))
		for _, f := range files {
			path := config.ExpandPath(f)
			data, err := os.ReadFile(path) //nolint:gosec // user-provided article path
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", f, err)
			}
			items = append(items, engine.BatchItem{Source: filepath.Base(path), Text: string(data)})
		}
		return items, nil
	}

	if len(args) > 0 {
		return []engine.BatchItem{{Source: "args", Text: strings.Join(args, " ")}}, nil
	}

	text, err := cli.NewNonBlockingReader(stdin, maxStdinBytes).ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return []engine.BatchItem{{Source: "stdin", Text: text}}, nil
}
