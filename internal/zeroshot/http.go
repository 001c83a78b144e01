package zeroshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Veraticus/newslens/internal/common"
)

const maxErrorBody = 512

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// postJSON sends payload to url and returns the body of a 200 response.
// Failures are classified as retryable or permanent for common.WithRetry.
func postJSON(ctx context.Context, httpClient *http.Client, provider, url string, headers map[string]string, payload any) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, common.Permanent(fmt.Errorf("%w: failed to marshal %s request: %v", common.ErrClassificationFailed, provider, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, common.Permanent(fmt.Errorf("%w: failed to create %s request: %v", common.ErrModelUnavailable, provider, err))
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, common.Retryable(fmt.Errorf("%w: %s request failed: %v", common.ErrModelUnavailable, provider, err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.Retryable(fmt.Errorf("%w: failed to read %s response: %v", common.ErrModelUnavailable, provider, err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(provider, resp.StatusCode, body)
	}

	return body, nil
}

// statusError maps a non-200 provider response onto the application errors.
func statusError(provider string, status int, body []byte) error {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	detail := fmt.Sprintf("%s API error (status %d): %s", provider, status, string(body))

	switch {
	case status == http.StatusTooManyRequests:
		return common.Retryable(fmt.Errorf("%w: %w: %s", common.ErrModelUnavailable, common.ErrRateLimit, detail))
	case status >= 500:
		// Hugging Face answers 503 while the model is still loading.
		return common.Retryable(fmt.Errorf("%w: %s", common.ErrModelUnavailable, detail))
	case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusNotFound:
		return common.Permanent(fmt.Errorf("%w: %s", common.ErrModelUnavailable, detail))
	default:
		return common.Permanent(fmt.Errorf("%w: %s", common.ErrClassificationFailed, detail))
	}
}
