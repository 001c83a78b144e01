// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/Veraticus/newslens/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main brand color.
	PrimaryColor = lipgloss.Color("#4facfe")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#38ef7d") // Green
	// WarningColor indicates warnings.
	WarningColor = lipgloss.Color("#f9d423") // Yellow
	// ErrorColor indicates errors.
	ErrorColor = lipgloss.Color("#ff4b2b") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#00f2fe") // Cyan
	// SubtleColor is used for less important text.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for main titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle is used for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// WarningStyle is used for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// InfoStyle is used for informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle is used for less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle is used for emphasized text.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// RealStyle renders the REAL NEWS verdict.
	RealStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fafafa")).
			Background(lipgloss.Color("#11998e")).
			Padding(0, 2)

	// FakeStyle renders the FAKE NEWS verdict.
	FakeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fafafa")).
			Background(lipgloss.Color("#ff416c")).
			Padding(0, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	NewsIcon    = "📰"
	RealIcon    = "✅"
	FakeIcon    = "❌"
	ChartIcon   = "📊"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the news icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(NewsIcon + " " + title)
}

// FormatVerdict renders the verdict badge.
func FormatVerdict(p model.Polarity) string {
	if p.IsReal() {
		return RealStyle.Render(string(model.PolarityReal) + " " + RealIcon)
	}
	return FakeStyle.Render(string(model.PolarityFake) + " " + FakeIcon)
}

// BandStyle colours text by confidence band.
func BandStyle(b model.Band) lipgloss.Style {
	switch b {
	case model.BandRed:
		return ErrorStyle
	case model.BandOrange:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}
