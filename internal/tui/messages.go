package tui

import "github.com/Veraticus/newslens/internal/model"

// analysisDoneMsg carries the engine result back to the update loop.
type analysisDoneMsg struct {
	err    error
	report *model.Report
}
