package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/eduline/elearn-client/internal/client/storage"
	"github.com/eduline/elearn-client/internal/validation"
	pkgapi "github.com/eduline/elearn-client/pkg/api"
)

// PlatformAPI is the slice of the REST API the auth layer depends on
type PlatformAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Refresh(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.RefreshResponse, error)
	Logout(ctx context.Context, req pkgapi.LogoutRequest) error
	GetUser(ctx context.Context, userID string) (*pkgapi.UserResponse, error)
}

// Service manages the session lifecycle: login, registration, logout and
// the access-token refresh exchange. It is the only writer of the credential
// store besides the logout path.
type Service struct {
	apiClient PlatformAPI
	store     storage.CredentialStorage
}

// NewService creates a new session service
func NewService(apiClient PlatformAPI, store storage.CredentialStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// LoginResult describes the session established by Login
type LoginResult struct {
	UserID   string
	Email    string
	Approval storage.ApprovalState
}

// Login authenticates against the platform and persists the session.
// The approval state is looked up from the user detail endpoint after the
// token pair is stored; a failed lookup leaves it unknown rather than
// failing the login.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	creds := &storage.Credentials{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Approval:     storage.ApprovalUnknown,
		UserID:       strconv.FormatInt(resp.User.ID, 10),
		DeviceID:     s.deviceID(ctx),
	}
	if err := s.store.SaveCredentials(ctx, creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	// The login response carries no approval flag; it lives on the user
	// detail. Best effort: an unreachable endpoint leaves it unknown.
	if user, err := s.apiClient.GetUser(ctx, creds.UserID); err != nil {
		slog.Warn("failed to fetch user detail after login", "error", err)
	} else {
		if user.IsApproved {
			creds.Approval = storage.ApprovalApproved
		} else {
			creds.Approval = storage.ApprovalPending
		}
		if err := s.store.SaveCredentials(ctx, creds); err != nil {
			return nil, fmt.Errorf("failed to save credentials: %w", err)
		}
	}

	return &LoginResult{
		UserID:   creds.UserID,
		Email:    resp.User.Email,
		Approval: creds.ApprovalState(),
	}, nil
}

// Register submits a new account application. Any previously stored session
// is cleared first so stale tokens cannot leak into the new account.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateUserType(req.UserType); err != nil {
		return nil, fmt.Errorf("invalid user type: %w", err)
	}

	if err := s.store.DeleteCredentials(ctx); err != nil && !errors.Is(err, storage.ErrCredentialsNotFound) {
		return nil, fmt.Errorf("failed to clear previous session: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return resp, nil
}

// Logout notifies the server (best effort) and always removes the local
// session, even when the server is unreachable.
func (s *Service) Logout(ctx context.Context) error {
	creds, err := s.store.GetCredentials(ctx)
	if err != nil {
		slog.Debug("no credentials found during logout", "error", err)
	} else if creds.RefreshToken != "" {
		if logoutErr := s.apiClient.Logout(ctx, pkgapi.LogoutRequest{Refresh: creds.RefreshToken}); logoutErr != nil {
			slog.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	if err := s.store.DeleteCredentials(ctx); err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete local credentials: %w", err)
	}

	return nil
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token and persists it. Every failure, transport or rejection alike, is
// reported as ErrRefreshDenied: the caller must treat the session as
// invalid, not retry.
func (s *Service) RefreshAccessToken(ctx context.Context) (*storage.Credentials, error) {
	creds, err := s.store.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil, ErrAuthRequired
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	if creds.RefreshToken == "" {
		return nil, ErrRefreshDenied
	}

	resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{Refresh: creds.RefreshToken})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefreshDenied, err)
	}

	creds.AccessToken = resp.Access
	if err := s.store.SaveCredentials(ctx, creds); err != nil {
		return nil, fmt.Errorf("failed to save refreshed credentials: %w", err)
	}

	return creds, nil
}

// deviceID reuses the device id of a previous session on this database, or
// generates a fresh one for a first login.
func (s *Service) deviceID(ctx context.Context) string {
	creds, err := s.store.GetCredentials(ctx)
	if err != nil || creds.DeviceID == "" {
		return uuid.New().String()
	}
	return creds.DeviceID
}
