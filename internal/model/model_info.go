package model

import "strings"

// ModelInfo describes the backing model for the informational tab.
type ModelInfo struct {
	Provider       string      `json:"provider"`
	ModelID        string      `json:"model_id"`
	Method         string      `json:"method"`
	Framework      string      `json:"framework,omitempty"`
	Architecture   string      `json:"architecture,omitempty"`
	Running        string      `json:"running,omitempty"`
	PolarityLabels []string    `json:"polarity_labels"`
	BiasLabels     []string    `json:"bias_labels"`
	Stack          []StackItem `json:"stack"`
}

// StackItem is one line of the technology stack listing.
type StackItem struct {
	Role  string `json:"role"`
	Value string `json:"value"`
}

// MethodZeroShot names the classification method shown to users.
const MethodZeroShot = "Zero-Shot Classification"

// NewModelInfo fills in the label sets and provider details for a
// provider/model pair. Unknown providers leave the details blank.
func NewModelInfo(provider, modelID string) ModelInfo {
	info := ModelInfo{
		Provider:       provider,
		ModelID:        modelID,
		Method:         MethodZeroShot,
		PolarityLabels: append([]string(nil), PolarityCandidates...),
		BiasLabels:     append([]string(nil), BiasCandidates...),
	}

	switch provider {
	case "huggingface":
		info.Framework = "Hugging Face Transformers"
		info.Architecture = "Transformer"
		if strings.Contains(strings.ToLower(modelID), "bart") {
			info.Architecture = "BART (Transformer)"
		}
		info.Running = "Remotely via the Hugging Face Inference API"
	case "openai":
		info.Framework = "OpenAI Chat Completions"
		info.Architecture = "GPT (Transformer)"
		info.Running = "Remotely via the OpenAI API"
	case "anthropic":
		info.Framework = "Anthropic Messages API"
		info.Architecture = "Claude (Transformer)"
		info.Running = "Remotely via the Anthropic API"
	case "static":
		info.Framework = "Static score table"
		info.Architecture = "None (fixed scores)"
		info.Running = "In process"
	}

	nlp := info.Framework
	if nlp == "" {
		nlp = provider
	}
	info.Stack = []StackItem{
		{Role: "Frontend", Value: "gin web dashboard, Bubble Tea terminal UI"},
		{Role: "Backend", Value: "Go"},
		{Role: "NLP Engine", Value: nlp},
		{Role: "Visualization", Value: "Inline SVG, Lip Gloss"},
	}

	return info
}
