// Package client implements the authenticated REST client every view goes
// through: GET/POST/PUT/DELETE against a fixed base URL, bearer token attached
// when a session is present, and the {data:{items:[...]}} envelope decoded on
// the way back.
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

	"github.com/SayubShakya/recipenest-client/internal/session"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

// APIError is a non-2xx response. Message is taken from the parsed JSON
// body's message or error field, falling back to "HTTP error! status: N".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client issues requests against the RecipeNest REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenSource
}

// New creates a Client. tokens may be nil for a purely unauthenticated client.
func New(baseURL string, timeout time.Duration, tokens session.TokenSource) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// Do performs a request and returns the decoded response envelope. A non-2xx
// status yields an *APIError; transport failures yield a wrapped error so
// callers can tell the two apart.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*types.Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+strings.TrimPrefix(path, "/"), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// 204 carries no body
	if resp.StatusCode == http.StatusNoContent {
		return &types.Envelope{}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env types.Envelope
	if len(raw) > 0 {
		// An unparseable body is tolerated; the status code decides below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.ErrorMessage()
		if msg == "" {
			msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return &env, nil
}

// GetItems fetches a collection endpoint and decodes data.items into v.
func (c *Client) GetItems(ctx context.Context, path string, v interface{}) error {
	env, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	var items types.Items
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return fmt.Errorf("failed to decode item list: %w", err)
	}
	if len(items.Items) == 0 {
		return nil
	}
	if err := json.Unmarshal(items.Items, v); err != nil {
		return fmt.Errorf("failed to decode item list: %w", err)
	}
	return nil
}

// GetData fetches a single-record endpoint and decodes data into v.
func (c *Client) GetData(ctx context.Context, path string, v interface{}) error {
	env, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if v == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// Post creates a record.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*types.Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put updates a record; the payload must include the record id.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*types.Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Delete removes a record; the id travels as a query parameter.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}
