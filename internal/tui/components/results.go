// Package components renders the pieces of the terminal dashboard.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/newslens/internal/model"
	"github.com/Veraticus/newslens/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Placeholder is shown before any analysis has run.
const Placeholder = "Results will appear here."

// SourceReliabilityNote is the static note under the chart.
const SourceReliabilityNote = "Source reliability estimation is based on textual consistency and bias signals."

const (
	fullCell  = "█"
	emptyCell = "░"
)

// VerdictCard renders the REAL NEWS / FAKE NEWS banner.
func VerdictCard(theme themes.Theme, verdict model.Polarity, width int) string {
	style := theme.FakeCard
	text := string(model.PolarityFake) + " ❌"
	if verdict.IsReal() {
		style = theme.RealCard
		text = string(model.PolarityReal) + " ✅"
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

// gaugeCells returns how many of width cells a confidence fills.
func gaugeCells(confidence float64, width int) int {
	if width <= 0 {
		return 0
	}
	c := math.Max(0, math.Min(100, confidence))
	return int(math.Round(c / 100 * float64(width)))
}

// Gauge renders the 0-100 confidence gauge. Each filled cell takes the
// colour of the step it sits in (0-50, 50-75, 75-100).
func Gauge(theme themes.Theme, confidence float64, width int) string {
	if width < 10 {
		width = 10
	}
	filled := gaugeCells(confidence, width)

	var sb strings.Builder
	for i := 0; i < width; i++ {
		pos := (float64(i) + 0.5) / float64(width) * 100
		color := theme.BandColor(model.BandFor(pos))
		cell := emptyCell
		if i < filled {
			cell = fullCell
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(cell))
	}

	title := theme.Subtitle.Render("Confidence %")
	value := theme.Bold.Render(fmt.Sprintf("%.2f", confidence))
	scale := theme.Subtitle.Render("0" + strings.Repeat(" ", max(width-4, 1)) + "100")
	return lipgloss.JoinVertical(lipgloss.Left, title+"  "+value, sb.String(), scale)
}

// ConfidenceBar renders a progress bar in the confidence band colour.
func ConfidenceBar(theme themes.Theme, indicators model.Indicators, confidence float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(theme.BandColor(indicators.Band))),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 10)),
	)
	heading := theme.Bold.Render(fmt.Sprintf("🌈 Confidence Bar (%.2f%%)", confidence))
	return lipgloss.JoinVertical(lipgloss.Left, heading, bar.ViewAs(confidence/100))
}

// BarChart renders the predicted/opposite comparison as horizontal bars.
func BarChart(theme themes.Theme, pair [2]float64, width int) string {
	labels := [2]string{model.PredictedLabel, model.OppositeLabel}
	labelWidth := len(model.PredictedLabel) + 1
	barWidth := max(width-labelWidth-8, 10)

	rows := []string{theme.Bold.Render("📈 Fake Probability Distribution")}
	for i, v := range pair {
		n := gaugeCells(v, barWidth)
		bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat(fullCell, n)) +
			strings.Repeat(" ", barWidth-n)
		rows = append(rows, fmt.Sprintf("%-*s %s %6.2f", labelWidth, labels[i], bar, v))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Results renders the full results panel for a report.
func Results(theme themes.Theme, r *model.Report, width int) string {
	if width < 20 {
		width = 20
	}
	inner := width - 4

	sections := []string{
		VerdictCard(theme, r.Indicators.Verdict, inner),
		Gauge(theme, r.Polarity.Confidence, inner),
		ConfidenceBar(theme, r.Indicators, r.Polarity.Confidence, inner),
		theme.Bold.Render("📌 News Credibility: " + string(r.Indicators.Credibility)),
		theme.Bold.Render("🎯 Risk Level: " + string(r.Indicators.Risk)),
		ScoreBreakdown(theme, r),
		BarChart(theme, r.Indicators.Comparison, inner),
		theme.Bold.Render("🌍 Source Reliability"),
		theme.StatusInfo.Render(SourceReliabilityNote),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ScoreBreakdown lists both confidences.
func ScoreBreakdown(theme themes.Theme, r *model.Report) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Bold.Render("🧠 AI Score Breakdown"),
		theme.Normal.Render(fmt.Sprintf("• Fake/Real Classification Confidence: %.2f%%", r.Polarity.Confidence)),
		theme.Normal.Render(fmt.Sprintf("• Bias: %s (%.2f%% confidence)", r.Bias.Label, r.Bias.Confidence)),
	)
}

// ModelInfo renders the informational tab.
func ModelInfo(theme themes.Theme, info model.ModelInfo) string {
	bullet := func(label, value string) string {
		return theme.Normal.Render("• " + label + value)
	}

	lines := []string{
		theme.Title.Render("🧠 Model Information"),
		theme.Bold.Render("Fake News Detection"),
		bullet("Provider: ", info.Provider),
		bullet("Model: ", info.ModelID),
	}
	if info.Framework != "" {
		lines = append(lines, bullet("Framework: ", info.Framework))
	}
	if info.Architecture != "" {
		lines = append(lines, bullet("Architecture: ", info.Architecture))
	}
	lines = append(lines, bullet("Method: ", info.Method))
	if info.Running != "" {
		lines = append(lines, bullet("Running: ", info.Running))
	}
	lines = append(lines,
		bullet("Labels: ", strings.Join(info.PolarityLabels, " / ")),
		"",
		theme.Bold.Render("Bias Detection"),
		bullet("Multi-class ", info.Method),
		bullet("Labels: ", strings.Join(info.BiasLabels, " / ")),
	)
	if len(info.Stack) > 0 {
		lines = append(lines, "", theme.Bold.Render("Technology Stack"))
		for _, item := range info.Stack {
			lines = append(lines, bullet(item.Role+": ", item.Value))
		}
	}
	lines = append(lines, "",
		theme.Subtitle.Render("This system performs semantic classification without supervised retraining."))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
