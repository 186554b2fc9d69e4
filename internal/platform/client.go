// internal/platform/client.go
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
)

// Client talks to the remote platform API over its query/mutation protocol:
// a single HTTP POST endpoint accepting {query, variables} and answering
// with a {data, errors} envelope.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a platform API client from configuration
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		endpoint: cfg.Platform.Endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Platform.Timeout,
		},
		logger: logger,
	}
}

// Error is a business-rule rejection reported by the platform. The remote
// message is preserved verbatim so callers can surface it to the user.
type Error struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

type contextKey string

const tokenKey contextKey = "platform_token"

// WithToken returns a context carrying the bearer token used for
// authenticated operations
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext extracts the bearer token, if any
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// do executes one operation and decodes the data envelope into out
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read platform response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"endpoint": c.endpoint,
		}).Warn("Platform returned non-200 status")
		return fmt.Errorf("platform returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode platform response: %w", err)
	}

	if len(env.Errors) > 0 {
		return &env.Errors[0]
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode platform data: %w", err)
		}
	}

	return nil
}
