package zeroshot

import (
	"fmt"
	"strings"
)

// NewClient creates a raw backend client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "huggingface", "":
		return newHuggingFaceClient(cfg)
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	case "static":
		return newStaticClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported zero-shot provider: %s", cfg.Provider)
	}
}
