package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/eduline/elearn-client/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8000"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "student@example.com", req.Email)
		assert.Equal(t, "password123", req.Password)

		_ = json.NewEncoder(w).Encode(pkgapi.LoginResponse{
			Access:  "access-1",
			Refresh: "refresh-1",
			User:    pkgapi.LoginUser{ID: 42, Email: req.Email},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "student@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-1", resp.Access)
	assert.Equal(t, "refresh-1", resp.Refresh)
	assert.Equal(t, int64(42), resp.User.ID)
}

func TestClient_Login_Error(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "invalid credentials",
			statusCode:     http.StatusUnauthorized,
			responseBody:   pkgapi.ErrorResponse{Detail: "Invalid credentials"},
			expectedErrMsg: "server error (401): Invalid credentials",
		},
		{
			name:           "internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(pkgapi.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.Login(context.Background(), pkgapi.LoginRequest{
				Email:    "student@example.com",
				Password: "password123",
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_TokenSource(t *testing.T) {
	t.Run("bearer header attached", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(pkgapi.UserResponse{ID: 42})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		client.SetTokenSource(func(ctx context.Context) string { return "token-1" })

		_, err := client.GetUser(context.Background(), "42")
		require.NoError(t, err)
	})

	t.Run("empty token sends no header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(pkgapi.UserResponse{ID: 42})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		client.SetTokenSource(func(ctx context.Context) string { return "" })

		_, err := client.GetUser(context.Background(), "42")
		require.NoError(t, err)
	})
}

func TestClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/user/42/", r.URL.Path)

		_ = json.NewEncoder(w).Encode(pkgapi.UserResponse{
			ID:         42,
			FirstName:  "Ada",
			LastName:   "Lovelace",
			IsApproved: true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	user, err := client.GetUser(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.True(t, user.IsApproved)
}

func TestClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token/refresh/", r.URL.Path)

		var req pkgapi.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh-1", req.Refresh)

		_ = json.NewEncoder(w).Encode(pkgapi.RefreshResponse{Access: "fresh"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Refresh(context.Background(), pkgapi.RefreshRequest{Refresh: "refresh-1"})

	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Access)
}

func TestClient_Logout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout/", r.URL.Path)
		w.WriteHeader(http.StatusResetContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Logout(context.Background(), pkgapi.LogoutRequest{Refresh: "refresh-1"})

	assert.NoError(t, err)
}

func TestClient_ListNotifications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notifications/notifications/", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]pkgapi.Notification{
			{ID: 5, Message: "Assignment graded"},
			{ID: 7, Message: "New course material"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	list, err := client.ListNotifications(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID)
	assert.Equal(t, "New course material", list[1].Message)
}

func TestClient_DeleteNotification(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/notifications/notifications/7/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		assert.NoError(t, client.DeleteNotification(context.Background(), 7))
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Detail: "Not found."})
		}))
		defer server.Close()

		client := NewClient(server.URL)

		err := client.DeleteNotification(context.Background(), 7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server error (404)")
	})
}
