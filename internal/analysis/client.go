package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Client posts hand-analysis requests to the backend service
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the analysis endpoint
func NewClient(endpoint string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithPrefix("analysis"),
	}
}

// Analyze posts a request and decodes the response. The context bounds the
// request's lifetime so the owning scope can cancel it on teardown.
func (c *Client) Analyze(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	requestID := uuid.New().String()
	httpReq.Header.Set("X-Request-Id", requestID)

	c.logger.Debug("Sending analysis request",
		"id", requestID,
		"hand", req.YourHand,
		"community", len(req.CommunityCards))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("analysis service returned %s", resp.Status)
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	c.logger.Debug("Received analysis response",
		"id", requestID,
		"action", result.Action,
		"strength", result.HandStrength)

	return &result, nil
}
