package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"multichat/internal/entities"
)

// APIClient talks to the chat service's POST /api/messages.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Platform    entities.Platform `json:"platform"`
	UserMessage string            `json:"userMessage"`
	SessionID   string            `json:"sessionId,omitempty"`
}

type sendResponse struct {
	AIMessage  string `json:"aiMessage"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

func (c *APIClient) Send(ctx context.Context, platform entities.Platform, text, sessionID string) (string, error) {
	body, err := json.Marshal(sendRequest{Platform: platform, UserMessage: text, SessionID: sessionID})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("rate limited, retry after %ds", out.RetryAfter)
		}
		return "", fmt.Errorf("service returned %d: %s", resp.StatusCode, out.Error)
	}
	return out.AIMessage, nil
}
