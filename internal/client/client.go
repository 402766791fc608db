package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blackjack-table/internal/game/viewmodel"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Code)
}

// Client talks to the blackjack HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Start(ctx context.Context) (*viewmodel.GameView, error) {
	return c.do(ctx, http.MethodPost, "/api/games", http.StatusCreated)
}

func (c *Client) Get(ctx context.Context, id string) (*viewmodel.GameView, error) {
	return c.do(ctx, http.MethodGet, "/api/games/"+url.PathEscape(id), http.StatusOK)
}

func (c *Client) Hit(ctx context.Context, id string) (*viewmodel.GameView, error) {
	return c.do(ctx, http.MethodPost, "/api/games/"+url.PathEscape(id)+"/hit", http.StatusOK)
}

func (c *Client) Stand(ctx context.Context, id string) (*viewmodel.GameView, error) {
	return c.do(ctx, http.MethodPost, "/api/games/"+url.PathEscape(id)+"/stand", http.StatusOK)
}

func (c *Client) do(ctx context.Context, method, path string, want int) (*viewmodel.GameView, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(nil))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &APIError{Status: resp.StatusCode, Code: body.Error}
	}
	var view viewmodel.GameView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	return &view, nil
}
