package model

// Credibility is a UI tier derived from confidence.
type Credibility string

// Credibility tiers.
const (
	CredibilityHigh   Credibility = "High"
	CredibilityMedium Credibility = "Medium"
	CredibilityLow    Credibility = "Low"
)

// Risk is a UI tier derived from the verdict.
type Risk string

// Risk tiers.
const (
	RiskLow  Risk = "Low Risk"
	RiskHigh Risk = "High Risk"
)

// Band is the colour bucket used by the gauge and the progress bar.
type Band string

// Confidence bands.
const (
	BandRed    Band = "red"
	BandOrange Band = "orange"
	BandGreen  Band = "green"
)

// Comparison labels for the two-bar chart.
const (
	PredictedLabel = "Predicted Label"
	OppositeLabel  = "Opposite Label"
)

// Indicators are pure functions of the polarity result.
type Indicators struct {
	Verdict     Polarity    `json:"verdict"`
	Credibility Credibility `json:"credibility"`
	Risk        Risk        `json:"risk"`
	Band        Band        `json:"band"`
	Comparison  [2]float64  `json:"comparison"`
}

// CredibilityFor returns High above 75, Medium above 50, Low otherwise.
// Values exactly on a breakpoint fall to the lower tier.
func CredibilityFor(confidence float64) Credibility {
	switch {
	case confidence > 75:
		return CredibilityHigh
	case confidence > 50:
		return CredibilityMedium
	default:
		return CredibilityLow
	}
}

// RiskFor returns Low Risk for real news and High Risk for anything else.
func RiskFor(p Polarity) Risk {
	if p.IsReal() {
		return RiskLow
	}
	return RiskHigh
}

// BandFor buckets confidence as red below 50, orange below 75, green otherwise.
func BandFor(confidence float64) Band {
	switch {
	case confidence < 50:
		return BandRed
	case confidence < 75:
		return BandOrange
	default:
		return BandGreen
	}
}

// ComparisonPair returns (confidence, 100-confidence).
func ComparisonPair(confidence float64) [2]float64 {
	return [2]float64{confidence, round2(100 - confidence)}
}

// DeriveIndicators computes every derived indicator from a polarity result.
func DeriveIndicators(r PolarityResult) Indicators {
	verdict := PolarityFake
	if r.Label.IsReal() {
		verdict = PolarityReal
	}
	return Indicators{
		Verdict:     verdict,
		Credibility: CredibilityFor(r.Confidence),
		Risk:        RiskFor(r.Label),
		Band:        BandFor(r.Confidence),
		Comparison:  ComparisonPair(r.Confidence),
	}
}
