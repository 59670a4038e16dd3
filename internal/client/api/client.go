package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eduline/elearn-client/pkg/api"
)

// TokenSource supplies the current access token for authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource func(ctx context.Context) string

// Client represents the HTTP client for the platform REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      TokenSource
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetTokenSource installs the access-token supplier used to authenticate
// requests. Typically backed by the credential store.
func (c *Client) SetTokenSource(src TokenSource) {
	c.token = src
}

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/login/", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register submits a new account application
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/register/", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a new access token
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.RefreshResponse, error) {
	var resp api.RefreshResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/token/refresh/", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("token refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout asks the server to blacklist the refresh token
func (c *Client) Logout(ctx context.Context, req api.LogoutRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/logout/", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// GetUser fetches the user detail for the given id
func (c *Client) GetUser(ctx context.Context, userID string) (*api.UserResponse, error) {
	var resp api.UserResponse
	path := fmt.Sprintf("/api/auth/user/%s/", url.PathEscape(userID))
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// ListNotifications fetches the persisted notifications snapshot
func (c *Client) ListNotifications(ctx context.Context) ([]api.Notification, error) {
	var resp []api.Notification
	err := c.doRequest(ctx, http.MethodGet, "/api/notifications/notifications/", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list notifications request failed: %w", err)
	}
	return resp, nil
}

// DeleteNotification dismisses a persisted notification by id
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/notifications/notifications/%d/", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete notification request failed: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request against the API
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
