package zeroshot

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
)

const systemPrompt = "You are a zero-shot text classifier. You MUST respond with ONLY a valid JSON object of the form " +
	`{"scores": {"<label>": <probability>, ...}}` +
	" containing every candidate label exactly as written, with probabilities between 0 and 1 that sum to 1. " +
	"Do not include any explanatory text or markdown formatting."

// buildPrompt creates the user prompt for a chat model acting as a
// zero-shot classifier.
func buildPrompt(text string, labels []string) string {
	var sb strings.Builder
	sb.WriteString("Classify the following text into exactly one of the candidate labels.\n\n")
	sb.WriteString("Candidate labels:\n")
	for _, label := range labels {
		fmt.Fprintf(&sb, "- %s\n", label)
	}
	sb.WriteString("\nText:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// parseLabelScores reads a chat model's JSON answer and projects it onto
// the candidate labels. Scores are renormalized to sum to 1.
func parseLabelScores(content string, labels []string) (model.LabelScores, error) {
	var jsonResp struct {
		Scores map[string]float64 `json:"scores"`
	}

	content = cleanMarkdownWrapper(content)
	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return nil, common.Permanent(fmt.Errorf("%w: failed to parse JSON response: %v", common.ErrClassificationFailed, err))
	}
	if len(jsonResp.Scores) == 0 {
		return nil, common.Permanent(fmt.Errorf("%w: no scores found in response", common.ErrClassificationFailed))
	}

	raw := make(map[string]float64, len(jsonResp.Scores))
	for label, score := range jsonResp.Scores {
		raw[strings.ToLower(strings.TrimSpace(label))] = score
	}

	scores := make(model.LabelScores, len(labels))
	for i, label := range labels {
		scores[i] = model.LabelScore{Label: label, Score: raw[strings.ToLower(label)]}
	}

	if err := normalize(scores); err != nil {
		return nil, err
	}
	return finishScores(scores)
}

// normalize clamps negatives to zero and rescales the scores to sum to 1.
func normalize(scores model.LabelScores) error {
	var sum float64
	for i := range scores {
		if scores[i].Score < 0 {
			scores[i].Score = 0
		}
		sum += scores[i].Score
	}
	if sum == 0 {
		return common.Permanent(fmt.Errorf("%w: all candidate labels scored zero", common.ErrClassificationFailed))
	}
	for i := range scores {
		scores[i].Score /= sum
	}
	return nil
}

// cleanMarkdownWrapper strips a ```json fence some models wrap answers in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		content = content[nl+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
