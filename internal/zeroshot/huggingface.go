package zeroshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Veraticus/newslens/internal/common"
	"github.com/Veraticus/newslens/internal/model"
)

const (
	defaultHuggingFaceURL   = "https://router.huggingface.co/hf-inference/models"
	defaultHuggingFaceModel = "facebook/bart-large-mnli"
)

// huggingFaceClient implements the Client interface for the Hugging Face
// inference API zero-shot-classification task.
type huggingFaceClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

type huggingFaceRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
		MultiLabel      bool     `json:"multi_label"`
	} `json:"parameters"`
}

// huggingFaceResponse is the classic pipeline shape: parallel label and
// score arrays, best-first.
type huggingFaceResponse struct {
	Sequence string    `json:"sequence"`
	Error    string    `json:"error"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

func newHuggingFaceClient(cfg Config) (Client, error) {
	modelID := cfg.Model
	if modelID == "" {
		modelID = defaultHuggingFaceModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceURL
	}

	return &huggingFaceClient{
		apiKey:     cfg.APIKey,
		model:      modelID,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(cfg.Timeout),
	}, nil
}

// Classify sends a zero-shot classification request to Hugging Face.
func (c *huggingFaceClient) Classify(ctx context.Context, text string, labels []string) (model.LabelScores, error) {
	var payload huggingFaceRequest
	payload.Inputs = text
	payload.Parameters.CandidateLabels = labels

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	body, err := postJSON(ctx, c.httpClient, "huggingface", c.baseURL+"/"+c.model, headers, payload)
	if err != nil {
		return nil, err
	}

	return parseHuggingFaceResponse(body)
}

// parseHuggingFaceResponse accepts both the parallel-array object and the
// newer list of {label, score} objects.
func parseHuggingFaceResponse(body []byte) (model.LabelScores, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, common.Permanent(fmt.Errorf("%w: empty huggingface response", common.ErrClassificationFailed))
	}

	if trimmed[0] == '[' {
		var pairs []struct {
			Label string  `json:"label"`
			Score float64 `json:"score"`
		}
		if err := json.Unmarshal(trimmed, &pairs); err != nil {
			return nil, common.Permanent(fmt.Errorf("%w: failed to parse huggingface response: %v", common.ErrClassificationFailed, err))
		}
		scores := make(model.LabelScores, 0, len(pairs))
		for _, p := range pairs {
			scores = append(scores, model.LabelScore{Label: p.Label, Score: p.Score})
		}
		return finishScores(scores)
	}

	var response huggingFaceResponse
	if err := json.Unmarshal(trimmed, &response); err != nil {
		return nil, common.Permanent(fmt.Errorf("%w: failed to parse huggingface response: %v", common.ErrClassificationFailed, err))
	}
	if response.Error != "" {
		return nil, common.Permanent(fmt.Errorf("%w: huggingface error: %s", common.ErrClassificationFailed, response.Error))
	}
	if len(response.Labels) != len(response.Scores) {
		return nil, common.Permanent(fmt.Errorf("%w: huggingface returned %d labels and %d scores",
			common.ErrClassificationFailed, len(response.Labels), len(response.Scores)))
	}

	scores := make(model.LabelScores, len(response.Labels))
	for i, label := range response.Labels {
		scores[i] = model.LabelScore{Label: label, Score: response.Scores[i]}
	}
	return finishScores(scores)
}

// finishScores validates and orders a backend result.
func finishScores(scores model.LabelScores) (model.LabelScores, error) {
	if err := scores.Validate(); err != nil {
		return nil, common.Permanent(fmt.Errorf("%w: %v", common.ErrClassificationFailed, err))
	}
	scores.Sort()
	return scores, nil
}
