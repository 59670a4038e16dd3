package auth

import (
	"context"
	"errors"

	"github.com/eduline/elearn-client/internal/client/storage"
	pkgapi "github.com/eduline/elearn-client/pkg/api"
)

// memStorage implements storage.CredentialStorage in memory for tests
type memStorage struct {
	creds     *storage.Credentials
	saveErr   error
	getErr    error
	deleteErr error
	saveCalls int
}

func (m *memStorage) SaveCredentials(ctx context.Context, creds *storage.Credentials) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	copied := *creds
	m.creds = &copied
	return nil
}

func (m *memStorage) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.creds == nil {
		return nil, storage.ErrCredentialsNotFound
	}
	copied := *m.creds
	return &copied, nil
}

func (m *memStorage) DeleteCredentials(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.creds == nil {
		return storage.ErrCredentialsNotFound
	}
	m.creds = nil
	return nil
}

// mockAPI implements PlatformAPI with canned responses and call counters
type mockAPI struct {
	loginResp    *pkgapi.LoginResponse
	loginErr     error
	registerResp *pkgapi.RegisterResponse
	registerErr  error
	refreshResp  *pkgapi.RefreshResponse
	refreshErr   error
	logoutErr    error
	userResp     *pkgapi.UserResponse
	userErr      error

	loginCalls    int
	registerCalls int
	refreshCalls  int
	logoutCalls   int
	userCalls     int
}

func (m *mockAPI) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *mockAPI) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
	m.registerCalls++
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registerResp, nil
}

func (m *mockAPI) Refresh(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.RefreshResponse, error) {
	m.refreshCalls++
	if m.refreshErr != nil {
		return nil, m.refreshErr
	}
	return m.refreshResp, nil
}

func (m *mockAPI) Logout(ctx context.Context, req pkgapi.LogoutRequest) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAPI) GetUser(ctx context.Context, userID string) (*pkgapi.UserResponse, error) {
	m.userCalls++
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.userResp, nil
}

var errNetwork = errors.New("network unreachable")
