package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredibilityFor(t *testing.T) {
	tests := []struct {
		name       string
		want       Credibility
		confidence float64
	}{
		{name: "zero", confidence: 0, want: CredibilityLow},
		{name: "below medium", confidence: 49.99, want: CredibilityLow},
		{name: "exactly 50 stays low", confidence: 50, want: CredibilityLow},
		{name: "just above 50", confidence: 50.01, want: CredibilityMedium},
		{name: "exactly 75 stays medium", confidence: 75, want: CredibilityMedium},
		{name: "just above 75", confidence: 75.01, want: CredibilityHigh},
		{name: "full", confidence: 100, want: CredibilityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CredibilityFor(tt.confidence))
		})
	}
}

func TestCredibilityForIsMonotonic(t *testing.T) {
	rank := map[Credibility]int{CredibilityLow: 0, CredibilityMedium: 1, CredibilityHigh: 2}

	prev := rank[CredibilityFor(0)]
	for c := 0.0; c <= 100.0; c += 0.25 {
		cur := rank[CredibilityFor(c)]
		assert.GreaterOrEqual(t, cur, prev, "tier dropped at %.2f", c)
		prev = cur
	}
}

func TestRiskFor(t *testing.T) {
	assert.Equal(t, RiskLow, RiskFor(PolarityReal))
	assert.Equal(t, RiskHigh, RiskFor(PolarityFake))
	assert.Equal(t, RiskHigh, RiskFor(Polarity("")))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandRed, BandFor(0))
	assert.Equal(t, BandRed, BandFor(49.99))
	assert.Equal(t, BandOrange, BandFor(50))
	assert.Equal(t, BandOrange, BandFor(74.99))
	assert.Equal(t, BandGreen, BandFor(75))
	assert.Equal(t, BandGreen, BandFor(100))
}

func TestComparisonPairSumsToHundred(t *testing.T) {
	for _, c := range []float64{0, 12.34, 50, 66.67, 87.35, 99.99, 100} {
		pair := ComparisonPair(c)
		assert.Equal(t, c, pair[0])
		assert.InDelta(t, 100.0, pair[0]+pair[1], 1e-9, "confidence %.2f", c)
	}
}

func TestDeriveIndicators(t *testing.T) {
	t.Run("confident real", func(t *testing.T) {
		ind := DeriveIndicators(PolarityResult{Label: PolarityReal, Confidence: 91.2})
		assert.Equal(t, PolarityReal, ind.Verdict)
		assert.Equal(t, CredibilityHigh, ind.Credibility)
		assert.Equal(t, RiskLow, ind.Risk)
		assert.Equal(t, BandGreen, ind.Band)
		assert.Equal(t, [2]float64{91.2, 8.8}, ind.Comparison)
	})

	t.Run("uncertain fake", func(t *testing.T) {
		ind := DeriveIndicators(PolarityResult{Label: PolarityFake, Confidence: 55})
		assert.Equal(t, PolarityFake, ind.Verdict)
		assert.Equal(t, CredibilityMedium, ind.Credibility)
		assert.Equal(t, RiskHigh, ind.Risk)
		assert.Equal(t, BandOrange, ind.Band)
	})

	t.Run("deterministic", func(t *testing.T) {
		in := PolarityResult{Label: PolarityFake, Confidence: 42.42}
		assert.Equal(t, DeriveIndicators(in), DeriveIndicators(in))
	})
}
