package auth

import "errors"

var (
	// ErrAuthRequired means there is no usable session; the user must log in
	ErrAuthRequired = errors.New("authentication required")

	// ErrMustRegister means no account approval was ever recorded for this
	// session; the user has to complete registration first
	ErrMustRegister = errors.New("registration required")

	// ErrApprovalPending means the account exists but has not been approved
	// by an admin yet
	ErrApprovalPending = errors.New("account approval pending")

	// ErrRefreshDenied means the token refresh was rejected; the session is
	// invalid and a full re-authentication is required
	ErrRefreshDenied = errors.New("token refresh denied")
)
