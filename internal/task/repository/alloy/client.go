package alloy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the HTTP wrapper for the connector's Zoho CRM Tasks surface.
// Every method is exactly one upstream call carrying the configured user id
// and credential id — no retries, no caching.
type Client struct {
	baseURL      string
	apiVersion   string
	apiKey       string
	userID       string
	credentialID string
	httpClient   *http.Client
}

// Config configures the connector client.
type Config struct {
	BaseURL      string
	APIVersion   string
	APIKey       string
	UserID       string
	CredentialID string
	Timeout      time.Duration
}

// NewClient creates a new connector HTTP client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		apiVersion:   cfg.APIVersion,
		apiKey:       cfg.APIKey,
		userID:       cfg.UserID,
		credentialID: cfg.CredentialID,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// tasksURL builds the connector tasks endpoint, optionally suffixed with a
// task id, always carrying userId and credentialId.
func (c *Client) tasksURL(id string, extra url.Values) string {
	u := fmt.Sprintf("%s/%s/one/crm/tasks", c.baseURL, c.apiVersion)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}

	q := url.Values{}
	q.Set("userId", c.userID)
	q.Set("credentialId", c.credentialID)
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return u + "?" + q.Encode()
}

func (c *Client) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// CreateTask creates a new task via POST /one/crm/tasks.
func (c *Client) CreateTask(ctx context.Context, payload TaskPayload) (*Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create task payload: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, c.tasksURL("", nil), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build create task request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call connector create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp)
	}

	var out taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode connector create response: %w", err)
	}
	return &out.Task, nil
}

// GetTask fetches a single task by its Zoho record id.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, c.tasksURL(id, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get task request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call connector get API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp)
	}

	var out taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode connector get response: %w", err)
	}
	return &out.Task, nil
}

// ListTasks lists tasks with optional paging.
func (c *Client) ListTasks(ctx context.Context, limit, page int) ([]Task, error) {
	extra := url.Values{}
	if limit > 0 {
		extra.Set("perPage", fmt.Sprintf("%d", limit))
	}
	if page > 0 {
		extra.Set("page", fmt.Sprintf("%d", page))
	}

	httpReq, err := c.newRequest(ctx, http.MethodGet, c.tasksURL("", extra), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call connector list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp)
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode connector list response: %w", err)
	}
	return out.Tasks, nil
}

// UpdateTask applies a partial update via PUT /one/crm/tasks/{id}.
// The payload carries only the fields being changed.
func (c *Client) UpdateTask(ctx context.Context, id string, payload TaskPayload) (*Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update task payload: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPut, c.tasksURL(id, nil), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build update task request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call connector update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp)
	}

	var out taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode connector update response: %w", err)
	}
	return &out.Task, nil
}

// DeleteTask removes a task via DELETE /one/crm/tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	httpReq, err := c.newRequest(ctx, http.MethodDelete, c.tasksURL(id, nil), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete task request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call connector delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
