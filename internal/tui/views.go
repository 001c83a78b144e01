package tui

import (
	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.theme.Header.Width(max(m.width-2, 20)).Render("📰 AI Fake News & Bias Detector")

	var body string
	if m.tab == TabModelInfo {
		body = m.theme.RoundedBox.Render(components.ModelInfo(m.theme, m.info))
	} else {
		body = m.renderDetect()
	}

	sections := []string{header, m.renderTabs(), body}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	detect, info := m.theme.TabInactive, m.theme.TabInactive
	if m.tab == TabDetect {
		detect = m.theme.TabActive
	} else {
		info = m.theme.TabActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		detect.Render("🔍 Detect News"),
		info.Render("ℹ️ Model Info"),
	)
}

func (m Model) renderDetect() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.RoundedBox.Render(m.input.View()),
		m.theme.Subtitle.Render("Ctrl+S to analyze"),
	)

	rightWidth := max(m.width-lipgloss.Width(left)-2, 30)
	right := lipgloss.NewStyle().Width(rightWidth).PaddingLeft(2).Render(m.renderResults(rightWidth - 2))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderResults(width int) string {
	switch {
	case m.analyzing:
		return m.spinner.View() + " " + m.theme.StatusPending.Render("Analyzing with AI model...")
	case m.lastError != nil:
		return m.theme.StatusError.Render("✗ " + common.UserMessage(m.lastError))
	case m.report == nil:
		return m.theme.StatusInfo.Render(components.Placeholder)
	default:
		return components.Results(m.theme, m.report, width)
	}
}
