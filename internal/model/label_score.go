package model

import (
	"fmt"
	"sort"
	"strings"
)

// LabelScore is one candidate label and the probability the model assigned to it.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Validate ensures the LabelScore has usable data.
func (s LabelScore) Validate() error {
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("label is required")
	}
	if s.Score < 0.0 || s.Score > 1.0 {
		return fmt.Errorf("score must be between 0.0 and 1.0, got %.4f", s.Score)
	}
	return nil
}

// LabelScores is the ranked output of a zero-shot model.
type LabelScores []LabelScore

// Len implements sort.Interface.
func (s LabelScores) Len() int {
	return len(s)
}

// Less implements sort.Interface - higher scores come first. Equal scores
// are left in the order the backend ranked them.
func (s LabelScores) Less(i, j int) bool {
	return s[i].Score > s[j].Score
}

// Swap implements sort.Interface.
func (s LabelScores) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort orders the scores best-first.
func (s LabelScores) Sort() {
	sort.Stable(s)
}

// Top returns the highest-scoring label, or nil if empty. On a tie the
// earliest entry wins, so backend-ranked input yields its first label.
// The receiver is not reordered.
func (s LabelScores) Top() *LabelScore {
	if len(s) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i].Score > s[best].Score {
			best = i
		}
	}
	return &s[best]
}

// Clone returns a copy that does not share the backing array.
func (s LabelScores) Clone() LabelScores {
	if s == nil {
		return nil
	}
	out := make(LabelScores, len(s))
	copy(out, s)
	return out
}

// Validate checks every entry and rejects duplicate labels.
func (s LabelScores) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("no label scores")
	}

	seen := make(map[string]bool, len(s))
	for i, ls := range s {
		if err := ls.Validate(); err != nil {
			return fmt.Errorf("invalid score at index %d: %w", i, err)
		}
		key := strings.ToLower(ls.Label)
		if seen[key] {
			return fmt.Errorf("duplicate label %q in scores", ls.Label)
		}
		seen[key] = true
	}
	return nil
}
