// Package client talks to the assistant's chat endpoint over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"proposal-assistant/internal/models"

	"github.com/google/uuid"
)

const chatPath = "/api/chat"

// ErrTransport wraps failures to reach the server or to read its reply.
var ErrTransport = errors.New("transport failure")

// APIError is returned when the server answers with an error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("assistant returned %d: %s", e.StatusCode, e.Message)
}

// Client sends conversations to the assistant.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chatReply mirrors both the success and the error body.
type chatReply struct {
	Response *string `json:"response"`
	Error    string  `json:"error"`
}

// Send posts the conversation and returns the assistant's reply.
func (c *Client) Send(ctx context.Context, messages []models.Message) (string, error) {
	payload, err := json.Marshal(models.ChatRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	logger := c.logger.With(slog.String("request_id", requestID))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("chat request failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	var reply chatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		logger.Warn("chat reply unreadable", slog.Int("status", resp.StatusCode), slog.Any("error", err))
		return "", fmt.Errorf("%w: decoding reply: %v", ErrTransport, err)
	}

	logger.Info("chat exchange",
		slog.Int("status", resp.StatusCode),
		slog.Int("messages", len(messages)),
		slog.Duration("duration", time.Since(start)),
	)

	switch {
	case reply.Error != "":
		return "", &APIError{StatusCode: resp.StatusCode, Message: reply.Error}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	case reply.Response == nil:
		return "", &APIError{StatusCode: resp.StatusCode, Message: "reply has no response field"}
	}
	return *reply.Response, nil
}
