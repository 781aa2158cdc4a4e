// Package client talks to the Quality Fast Food ordering backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quality-fastfood/models"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// GetMenu fetches the full menu grouped by category.
func (c *Client) GetMenu(ctx context.Context) (*models.MenuResponse, error) {
	var menu models.MenuResponse
	if err := c.do(ctx, http.MethodGet, "/menu", nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// CreateOrder submits an order and returns the backend confirmation.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderSuccessResponse, error) {
	var resp models.OrderSuccessResponse
	if err := c.do(ctx, http.MethodPost, "/order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrder fetches a placed order by its id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	path := "/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// do sends one request and decodes the JSON response into out. Non-2xx
// responses surface the backend's "detail" message when one is present.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Detail != "" {
			return fmt.Errorf("%s", e.Detail)
		}
		return fmt.Errorf("HTTP error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
