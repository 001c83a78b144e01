package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/newslens/internal/model"
)

// FormatReport renders a report the way the dashboard lays it out.
func FormatReport(r *model.Report) string {
	ind := r.Indicators
	band := BandStyle(ind.Band)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", FormatVerdict(ind.Verdict))
	fmt.Fprintf(&sb, "Confidence:   %s\n", band.Render(fmt.Sprintf("%.2f%%", r.Polarity.Confidence)))
	fmt.Fprintf(&sb, "              %s\n", confidenceBar(r.Polarity.Confidence, band.Render("█")))
	fmt.Fprintf(&sb, "Credibility:  %s\n", BoldStyle.Render(string(ind.Credibility)))
	fmt.Fprintf(&sb, "Risk Level:   %s\n", BoldStyle.Render(string(ind.Risk)))
	fmt.Fprintf(&sb, "Bias:         %s (%.2f%%)\n\n", r.Bias.Label, r.Bias.Confidence)

	fmt.Fprintf(&sb, "%s AI Score Breakdown\n", ChartIcon)
	fmt.Fprintf(&sb, "  • Fake/Real Classification Confidence: %.2f%%\n", r.Polarity.Confidence)
	fmt.Fprintf(&sb, "  • Bias Confidence: %.2f%%\n\n", r.Bias.Confidence)

	sb.WriteString("Fake Probability Distribution\n")
	fmt.Fprintf(&sb, "  %-16s %6.2f\n", model.PredictedLabel, ind.Comparison[0])
	fmt.Fprintf(&sb, "  %-16s %6.2f", model.OppositeLabel, ind.Comparison[1])

	if r.Excerpt != "" {
		fmt.Fprintf(&sb, "\n\n%s", SubtleStyle.Render("“"+r.Excerpt+"”"))
	}

	return RenderBox("Analysis Result", sb.String())
}

// confidenceBar draws a 20-cell bar using cell for filled positions.
func confidenceBar(confidence float64, cell string) string {
	const width = 20
	filled := int(confidence/100*width + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat(cell, filled) + SubtleStyle.Render(strings.Repeat("░", width-filled))
}

// FormatModelInfo renders the model information panel.
func FormatModelInfo(info model.ModelInfo) string {
	var sb strings.Builder
	sb.WriteString(BoldStyle.Render("Fake News Detection") + "\n")
	fmt.Fprintf(&sb, "  • Provider: %s\n", info.Provider)
	fmt.Fprintf(&sb, "  • Model: %s\n", info.ModelID)
	if info.Framework != "" {
		fmt.Fprintf(&sb, "  • Framework: %s\n", info.Framework)
	}
	if info.Architecture != "" {
		fmt.Fprintf(&sb, "  • Architecture: %s\n", info.Architecture)
	}
	fmt.Fprintf(&sb, "  • Method: %s\n", info.Method)
	if info.Running != "" {
		fmt.Fprintf(&sb, "  • Running: %s\n", info.Running)
	}
	fmt.Fprintf(&sb, "  • Labels: %s\n\n", strings.Join(info.PolarityLabels, " / "))
	sb.WriteString(BoldStyle.Render("Bias Detection") + "\n")
	fmt.Fprintf(&sb, "  • Multi-class %s\n", info.Method)
	fmt.Fprintf(&sb, "  • Labels: %s", strings.Join(info.BiasLabels, " / "))
	if len(info.Stack) > 0 {
		sb.WriteString("\n\n" + BoldStyle.Render("Technology Stack"))
		for _, item := range info.Stack {
			fmt.Fprintf(&sb, "\n  • %s: %s", item.Role, item.Value)
		}
	}
	return RenderBox("Model Information", sb.String())
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
