package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// SpacyAnnotator implements the Annotator interface against a spaCy
// sidecar service speaking JSON over HTTP
type SpacyAnnotator struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// spaCy sidecar API structures
type spacyRequest struct {
	Text string `json:"text"`
}

type spacyResponse struct {
	Sentences []Sentence `json:"sentences"`
}

type spacyError struct {
	Error string `json:"error"`
}

// NewSpacyAnnotator creates a new spaCy sidecar client
func NewSpacyAnnotator(config Config) (*SpacyAnnotator, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:9035"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &SpacyAnnotator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: config,
	}, nil
}

// Name returns the engine name
func (a *SpacyAnnotator) Name() string {
	return "spacy"
}

// IsAvailable checks if the sidecar is reachable
func (a *SpacyAnnotator) IsAvailable(ctx context.Context) bool {
	url := fmt.Sprintf("%s/health", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaCy availability check failed (request creation): %v\n", err)
		return false
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaCy availability check failed (connection to %s): %v\n", a.baseURL, err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "spaCy availability check failed (HTTP %d from %s)\n", resp.StatusCode, a.baseURL)
		return false
	}

	return true
}

// Annotate sends text to the sidecar and returns annotated sentences
func (a *SpacyAnnotator) Annotate(ctx context.Context, text string) ([]Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	resp, err := a.makeRequest(ctx, spacyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("spacy API error: %w", err)
	}

	return resp.Sentences, nil
}

// makeRequest makes an HTTP request to the spaCy sidecar
func (a *SpacyAnnotator) makeRequest(ctx context.Context, apiReq spacyRequest) (*spacyResponse, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/annotate", a.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr spacyError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp spacyResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &resp, nil
}
