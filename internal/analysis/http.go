package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/abhisek/mindcheck/internal/scoring"
)

// DefaultTimeout bounds a remote analysis request.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 512

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("analysis endpoint returned %d", e.StatusCode)
	}
	return fmt.Sprintf("analysis endpoint returned %d: %s", e.StatusCode, e.Body)
}

// HTTPAnalyzer posts the result as JSON to a remote endpoint and decodes
// the commentary from the response.
type HTTPAnalyzer struct {
	endpoint string
	client   *http.Client
}

// NewHTTPAnalyzer creates an analyzer for endpoint. A non-positive timeout
// selects DefaultTimeout.
func NewHTTPAnalyzer(endpoint string, timeout time.Duration) *HTTPAnalyzer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return &HTTPAnalyzer{endpoint: endpoint, client: client}
}

// Endpoint returns the configured URL.
func (a *HTTPAnalyzer) Endpoint() string {
	return a.endpoint
}

func (a *HTTPAnalyzer) Name() string {
	return BackendRemote
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, result *scoring.Result) (*Result, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post analysis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return &out, nil
}
