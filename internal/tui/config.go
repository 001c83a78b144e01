package tui

import (
	"github.com/Veraticus/newslens/internal/service"
	"github.com/Veraticus/newslens/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Analyzer service.Analyzer
	Theme    themes.Theme
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Width:    120,
		Height:   40,
		ShowHelp: true,
	}
}

// WithAnalyzer sets the analysis engine.
func WithAnalyzer(analyzer service.Analyzer) Option {
	return func(c *Config) {
		c.Analyzer = analyzer
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
