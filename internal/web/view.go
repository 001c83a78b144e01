package web

import (
	"fmt"
	"math"

	"github.com/Veraticus/newslens/internal/model"
)

// Placeholder is shown in the results panel before any analysis.
const Placeholder = "Results will appear here."

// SourceReliabilityNote is the static note under the chart.
const SourceReliabilityNote = "Source reliability estimation is based on textual consistency and bias signals. " +
	"Advanced source verification can be integrated here."

// Gauge geometry, in SVG user units.
const (
	gaugeCX     = 120.0
	gaugeCY     = 120.0
	gaugeRadius = 90.0
)

// Chart geometry.
const (
	chartHeight   = 160.0
	chartBaseline = 180.0
	chartBarWidth = 80.0
)

// Colours shared by the gauge steps and the progress bar.
var bandColors = map[model.Band]string{
	model.BandRed:    "#ff4b2b",
	model.BandOrange: "#f9d423",
	model.BandGreen:  "#38ef7d",
}

const gaugeValueColor = "cyan"

type pageData struct {
	Report      *model.Report
	Gauge       *gaugeView
	Chart       *chartView
	Tab         string
	Text        string
	Error       string
	Note        string
	Placeholder string
	Progress    progressView
	Info        model.ModelInfo
}

// arcView is one stroked arc of the gauge.
type arcView struct {
	Path  string
	Color string
}

type gaugeView struct {
	Value     string
	ValuePath string
	Steps     []arcView
}

type barView struct {
	Label  string
	Value  string
	X      float64
	Y      float64
	Height float64
	Width  float64
}

type chartView struct {
	Bars     []barView
	Baseline float64
}

type progressView struct {
	Width string
	Color string
	Band  model.Band
}

// ShowPlaceholder reports whether the results panel has nothing to show.
func (p pageData) ShowPlaceholder() bool {
	return p.Report == nil && p.Error == ""
}

func newPageData(tab string, info model.ModelInfo) pageData {
	if tab != "model" {
		tab = "detect"
	}
	return pageData{Tab: tab, Info: info, Note: SourceReliabilityNote, Placeholder: Placeholder}
}

func (p *pageData) setReport(r *model.Report) {
	p.Report = r
	confidence := r.Polarity.Confidence
	p.Gauge = newGaugeView(confidence)
	p.Chart = newChartView(r.Indicators.Comparison)
	p.Progress = progressView{
		Width: formatPercent(confidence),
		Band:  r.Indicators.Band,
		Color: bandColors[r.Indicators.Band],
	}
}

// gaugePoint maps a 0-100 value onto the upper semicircle, 0 on the left.
func gaugePoint(value float64) (x, y float64) {
	value = math.Max(0, math.Min(100, value))
	theta := math.Pi * (1 - value/100)
	return gaugeCX + gaugeRadius*math.Cos(theta), gaugeCY - gaugeRadius*math.Sin(theta)
}

// arcPath draws the clockwise arc between two gauge values.
func arcPath(from, to float64) string {
	x1, y1 := gaugePoint(from)
	x2, y2 := gaugePoint(to)
	return fmt.Sprintf("M %.2f %.2f A %.0f %.0f 0 0 1 %.2f %.2f", x1, y1, gaugeRadius, gaugeRadius, x2, y2)
}

func newGaugeView(confidence float64) *gaugeView {
	return &gaugeView{
		Value: formatPercent(confidence),
		Steps: []arcView{
			{Path: arcPath(0, 50), Color: bandColors[model.BandRed]},
			{Path: arcPath(50, 75), Color: bandColors[model.BandOrange]},
			{Path: arcPath(75, 100), Color: bandColors[model.BandGreen]},
		},
		ValuePath: arcPath(0, confidence),
	}
}

func newChartView(pair [2]float64) *chartView {
	labels := [2]string{model.PredictedLabel, model.OppositeLabel}
	chart := &chartView{Baseline: chartBaseline}
	for i, v := range pair {
		h := chartHeight * math.Max(0, math.Min(100, v)) / 100
		chart.Bars = append(chart.Bars, barView{
			Label:  labels[i],
			Value:  formatPercent(v),
			X:      40 + float64(i)*(chartBarWidth+60),
			Y:      chartBaseline - h,
			Height: h,
			Width:  chartBarWidth,
		})
	}
	return chart
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
