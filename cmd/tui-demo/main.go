// Package main runs the terminal dashboard against a canned classifier,
// so the UI can be explored without a model backend.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/newslens/internal/engine"
	"github.com/Veraticus/newslens/internal/tui"
	"github.com/Veraticus/newslens/internal/tui/themes"
)

func main() {
	theme := themes.Default
	if len(os.Args) > 1 {
		theme = themes.GetTheme(os.Args[1])
	}

	eng, _ := engine.NewMockEngine()

	if err := tui.Run(context.Background(),
		tui.WithAnalyzer(eng),
		tui.WithTheme(theme),
	); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
