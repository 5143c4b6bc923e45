package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leadportaal/internal/forms"
)

// Client is the submission client used by out-of-process wizards (the CLI
// flows). It serializes FormAnswers, posts them to the lead API, and folds
// every failure into the wizard's closed error taxonomy. It performs no
// retries; the caller decides whether to resubmit.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a submission client for the given API base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// apiResponse mirrors the server's response envelope.
type apiResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID string `json:"id"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Submit implements forms.Submitter over HTTP.
func (c *Client) Submit(ctx context.Context, kind forms.RecordKind, payload map[string]any) (string, error) {
	var path string
	switch kind {
	case forms.KindQuote:
		path = "/api/v1/quotes"
	case forms.KindFreelancer:
		path = "/api/v1/freelancers"
	default:
		return "", fmt.Errorf("%w: unknown record kind %q", forms.ErrTransport, kind)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", forms.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", forms.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", forms.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", forms.ErrTransport, err)
	}

	var parsed apiResponse
	// A body that is not the expected envelope is treated like any other
	// transport failure below; decoding is best effort on error paths.
	_ = json.Unmarshal(raw, &parsed)

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if parsed.Data.ID == "" {
			return "", fmt.Errorf("%w: response missing record id", forms.ErrTransport)
		}
		return parsed.Data.ID, nil
	case resp.StatusCode == http.StatusConflict:
		return "", fmt.Errorf("%w", forms.ErrDuplicate)
	case resp.StatusCode == http.StatusServiceUnavailable:
		return "", fmt.Errorf("%w", forms.ErrBackendMisconfigured)
	default:
		msg := http.StatusText(resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: %s (status %d)", forms.ErrTransport, msg, resp.StatusCode)
	}
}
