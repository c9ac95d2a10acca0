package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/models"
)

const (
	clientTimeout = 30 * time.Second
)

// Client talks to a move server over HTTP.
type Client struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	httpClient *http.Client
}

func NewClient(config *config.ClientConfig) *Client {
	slog.Debug("New API client created", "server_url", config.ServerURL)

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *Client) logRequestAsCurl(req *http.Request) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(req.Method)
	builder.WriteString(" '")
	builder.WriteString(req.URL.String())
	builder.WriteString("'")

	for key, values := range req.Header {
		if strings.EqualFold(key, "x-token") {
			values = []string{"***"}
		}

		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			slog.Error("Failed to read request body", "error", err)
		}

		if len(body) > 0 {
			builder.WriteString(" -d '")
			builder.WriteString(strings.ReplaceAll(string(body), "'", "'\\''"))
			builder.WriteString("'")
		}

		// Restore the original body
		req.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	slog.Debug("Sending request", "command", builder.String())
}

// request sends payload as JSON and decodes the JSON response into result.
func (c *Client) request(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("X-Token", c.config.Token)

	c.logRequestAsCurl(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("Response", "status", resp.Status, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("server returned %v: %s", resp.Status, errResp.Error)
		}
		return fmt.Errorf("server returned unexpected status %v", resp.Status)
	}

	if err = json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ChooseMove asks the server for a move.
func (c *Client) ChooseMove(ctx context.Context, payload models.MoveRequest) (*models.MoveResponse, error) {
	var response models.MoveResponse
	if err := c.request(ctx, http.MethodPost, "/api/moves", payload, &response); err != nil {
		return nil, fmt.Errorf("failed to choose move: %w", err)
	}

	return &response, nil
}

// GetSearchStats fetches the search counters of the server.
func (c *Client) GetSearchStats(ctx context.Context) ([]models.StrategyStats, error) {
	var stats []models.StrategyStats
	if err := c.request(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get search stats: %w", err)
	}

	return stats, nil
}
