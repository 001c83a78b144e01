package themes

import (
	"github.com/Veraticus/newslens/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Header        lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	RealCard      lipgloss.Style
	FakeCard      lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Red           lipgloss.Color
	Orange        lipgloss.Color
	Green         lipgloss.Color
	Accent        lipgloss.Color
}

// BandColor returns the theme colour for a confidence band.
func (t Theme) BandColor(b model.Band) lipgloss.Color {
	switch b {
	case model.BandRed:
		return t.Red
	case model.BandOrange:
		return t.Orange
	default:
		return t.Green
	}
}

// Palette is the small set of colours a Theme is derived from.
type Palette struct {
	Primary    string
	Accent     string
	Surface    string
	Ink        string
	Foreground string
	Subtle     string
	Muted      string
	Border     string
	Info       string
	Red        string
	Orange     string
	Green      string
	RealCard   string
	FakeCard   string
}

// New derives every style from p.
func New(p Palette) Theme {
	fg := lipgloss.Color(p.Foreground)
	card := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Ink)).
			Background(lipgloss.Color(bg)).Padding(1, 4).Align(lipgloss.Center)
	}

	return Theme{
		Primary:    lipgloss.Color(p.Primary),
		Accent:     lipgloss.Color(p.Accent),
		Red:        lipgloss.Color(p.Red),
		Orange:     lipgloss.Color(p.Orange),
		Green:      lipgloss.Color(p.Green),
		Foreground: fg,
		Border:     lipgloss.Color(p.Border),
		Muted:      lipgloss.Color(p.Muted),

		Title:       lipgloss.NewStyle().Bold(true).Foreground(fg).MarginBottom(1),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Subtle)),
		Normal:      lipgloss.NewStyle().Foreground(fg),
		Bold:        lipgloss.NewStyle().Bold(true).Foreground(fg),
		Header:      card(p.Primary).Foreground(lipgloss.Color(p.Surface)),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(fg).Background(lipgloss.Color(p.Surface)).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Padding(0, 2),
		RealCard:    card(p.RealCard),
		FakeCard:    card(p.FakeCard),
		RoundedBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).Padding(0, 1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Red)).Bold(true),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Info)).Bold(true),
		StatusPending: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Italic(true),
	}
}

// Default follows the browser dashboard palette.
var Default = New(Palette{
	Primary:    "#4facfe",
	Accent:     "#00f2fe",
	Surface:    "#203a43",
	Ink:        "#fafafa",
	Foreground: "#fafafa",
	Subtle:     "#a3a3a3",
	Muted:      "#737373",
	Border:     "#404040",
	Info:       "#3b82f6",
	Red:        "#ff4b2b",
	Orange:     "#f9d423",
	Green:      "#38ef7d",
	RealCard:   "#11998e",
	FakeCard:   "#ff416c",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New(Palette{
	Primary:    "#89b4fa",
	Accent:     "#89dceb",
	Surface:    "#313244",
	Ink:        "#1e1e2e",
	Foreground: "#cdd6f4",
	Subtle:     "#a6adc8",
	Muted:      "#6c7086",
	Border:     "#45475a",
	Info:       "#89dceb",
	Red:        "#f38ba8",
	Orange:     "#fab387",
	Green:      "#a6e3a1",
	RealCard:   "#a6e3a1",
	FakeCard:   "#f38ba8",
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
