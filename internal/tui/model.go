// Package tui implements the interactive terminal dashboard.
package tui

import (
	"context"
	"strings"

	"github.com/Veraticus/newslens/internal/model"
	"github.com/Veraticus/newslens/internal/service"
	"github.com/Veraticus/newslens/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab is the visible dashboard tab.
type Tab int

const (
	TabDetect Tab = iota
	TabModelInfo
)

// Model holds the dashboard state.
type Model struct {
	ctx       context.Context
	analyzer  service.Analyzer
	lastError error
	report    *model.Report
	theme     themes.Theme
	info      model.ModelInfo
	keymap    KeyMap
	help      help.Model
	input     textarea.Model
	spinner   spinner.Model
	width     int
	height    int
	tab       Tab
	showHelp  bool
	analyzing bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	input := textarea.New()
	input.Placeholder = "Paste news article here..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = cfg.Theme.StatusInfo

	m := Model{
		ctx:      ctx,
		analyzer: cfg.Analyzer,
		theme:    cfg.Theme,
		info:     cfg.Analyzer.ModelInfo(),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		input:    input,
		spinner:  spin,
		showHelp: cfg.ShowHelp,
	}
	m.resize(cfg.Width, cfg.Height)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case analysisDoneMsg:
		m.analyzing = false
		m.report = msg.report
		m.lastError = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.SwitchTab):
		if m.tab == TabDetect {
			m.tab = TabModelInfo
			m.input.Blur()
		} else {
			m.tab = TabDetect
			m.input.Focus()
		}
		return m, nil
	}

	if m.tab != TabDetect {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Analyze):
		return m.startAnalysis()

	case key.Matches(msg, m.keymap.Clear):
		if m.analyzing {
			return m, nil
		}
		m.input.Reset()
		m.report = nil
		m.lastError = nil
		return m, nil
	}

	if m.analyzing {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startAnalysis runs the engine unless the input is blank, in which case
// the results panel falls back to the placeholder.
func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	if m.analyzing {
		return m, nil
	}

	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.report = nil
		m.lastError = nil
		return m, nil
	}

	m.analyzing = true
	m.lastError = nil
	return m, tea.Batch(m.spinner.Tick, m.analyze(text))
}

func (m Model) analyze(text string) tea.Cmd {
	analyzer := m.analyzer
	ctx := m.ctx
	return func() tea.Msg {
		report, err := analyzer.Analyze(ctx, text)
		return analysisDoneMsg{report: report, err: err}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	inputWidth := max(width*3/5-4, 20)
	m.input.SetWidth(inputWidth)
	m.input.SetHeight(max(height-12, 5))
}
