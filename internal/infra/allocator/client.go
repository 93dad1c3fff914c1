package allocator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase/queries"
)

// Client speaks the allocator's HTTP surface. Methods here are synchronous and
// return errors; the best-effort semantics live one level up in Gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.AllocatorConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type reserveRequest struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
}

type releaseRequest struct {
	Status string `json:"status"`
}

func (c *Client) Reserve(ctx context.Context, id, customerName string) error {
	return c.send(ctx, http.MethodPost, "/reserve", reserveRequest{ID: id, CustomerName: customerName})
}

func (c *Client) Release(ctx context.Context, tableNumber string) error {
	path := fmt.Sprintf("/tables/%s/release", tableNumber)
	return c.send(ctx, http.MethodPut, path, releaseRequest{Status: "available"})
}

func (c *Client) PushReview(ctx context.Context, rv queries.ReviewView) error {
	return c.send(ctx, http.MethodPost, "/add-review", rv)
}

func (c *Client) Menu(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/menu")
}

func (c *Client) Tables(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/tables")
}

func (c *Client) send(ctx context.Context, method, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode allocator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build allocator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("allocator call %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("allocator call %s %s returned status %d", method, path, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build allocator request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("allocator call GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("allocator call GET %s returned status %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read allocator response: %w", err)
	}
	return json.RawMessage(raw), nil
}
