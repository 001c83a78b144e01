package model

import (
	"fmt"
	"strings"
)

// Polarity is the normalized real/fake verdict.
type Polarity string

// Polarity values, displayed upper case.
const (
	PolarityReal Polarity = "REAL NEWS"
	PolarityFake Polarity = "FAKE NEWS"
)

// PolarityCandidates are the candidate labels sent to the model.
var PolarityCandidates = []string{"Real News", "Fake News"}

// ParsePolarity maps a raw model label onto a Polarity regardless of casing
// or surrounding whitespace.
func ParsePolarity(raw string) (Polarity, error) {
	switch strings.ToUpper(strings.Join(strings.Fields(raw), " ")) {
	case string(PolarityReal):
		return PolarityReal, nil
	case string(PolarityFake):
		return PolarityFake, nil
	default:
		return "", fmt.Errorf("unknown polarity label %q", raw)
	}
}

// IsReal reports whether the verdict is real news.
func (p Polarity) IsReal() bool {
	return p == PolarityReal
}

func (p Polarity) String() string {
	return string(p)
}

// Bias is the normalized political-leaning label.
type Bias string

// Bias values.
const (
	BiasLeft    Bias = "Left Bias"
	BiasRight   Bias = "Right Bias"
	BiasNeutral Bias = "Neutral"
)

// BiasCandidates are the candidate labels sent to the model.
var BiasCandidates = []string{string(BiasLeft), string(BiasRight), string(BiasNeutral)}

// ParseBias maps a raw model label onto a Bias.
func ParseBias(raw string) (Bias, error) {
	normalized := strings.Join(strings.Fields(raw), " ")
	for _, b := range []Bias{BiasLeft, BiasRight, BiasNeutral} {
		if strings.EqualFold(normalized, string(b)) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bias label %q", raw)
}

func (b Bias) String() string {
	return string(b)
}
