package storage

import (
	"context"
)

// ApprovalState is the account-approval state attached to a session.
// Accounts are created unapproved and flip to approved when an admin
// acts on them; a state recorded before registration completed is unknown.
type ApprovalState string

const (
	ApprovalUnknown  ApprovalState = "unknown"
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
)

// Credentials is the persisted session state of the client.
// It is owned by the credential store: login/register/logout and the token
// refresh path are the only writers, everything else reads.
type Credentials struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Approval     ApprovalState `json:"approval"`
	UserID       string        `json:"user_id"`
	DeviceID     string        `json:"device_id"` // generated on first login, stable per client database
}

// ApprovalState returns the stored approval state, forced to unknown when
// no access token is present. A stale flag without a session must not route
// the user anywhere but registration.
func (c *Credentials) ApprovalState() ApprovalState {
	if c == nil || c.AccessToken == "" {
		return ApprovalUnknown
	}
	if c.Approval == "" {
		return ApprovalUnknown
	}
	return c.Approval
}

// CredentialStorage defines the interface for persisting session credentials
// on the client between invocations.
type CredentialStorage interface {
	// SaveCredentials stores the credentials, replacing any previous session
	SaveCredentials(ctx context.Context, creds *Credentials) error

	// GetCredentials retrieves the stored credentials.
	// Returns ErrCredentialsNotFound if no session exists.
	GetCredentials(ctx context.Context) (*Credentials, error)

	// DeleteCredentials removes the stored credentials (logout)
	DeleteCredentials(ctx context.Context) error
}
