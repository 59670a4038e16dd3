package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eduline/elearn-client/internal/client/storage"
)

// Outcome is the result of one session-guard evaluation
type Outcome int

const (
	// OutcomeUnauthenticated routes to login: no session, or refresh denied
	OutcomeUnauthenticated Outcome = iota
	// OutcomeMustRegister routes to registration: the session carries no
	// approval record at all
	OutcomeMustRegister
	// OutcomeUnapproved routes to the pending-approval notice
	OutcomeUnapproved
	// OutcomeAuthorized admits the user to protected commands
	OutcomeAuthorized
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeMustRegister:
		return "must-register"
	case OutcomeUnapproved:
		return "unapproved"
	case OutcomeAuthorized:
		return "authorized"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Guard gates every protected command. One evaluation performs at most one
// network call (the token refresh) and is idempotent: unchanged credentials
// yield the same outcome, and a refresh performed by a previous evaluation
// means the next one runs without any network access.
type Guard struct {
	store   storage.CredentialStorage
	session *Service
	now     func() time.Time
}

// NewGuard creates a session guard backed by the given store and session
// service
func NewGuard(store storage.CredentialStorage, session *Service) *Guard {
	return &Guard{
		store:   store,
		session: session,
		now:     time.Now,
	}
}

// Evaluate runs the guard once. Refresh failures map to
// OutcomeUnauthenticated; the stored credentials are left in place for the
// caller to clear.
func (g *Guard) Evaluate(ctx context.Context) (Outcome, error) {
	creds, err := g.store.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return OutcomeUnauthenticated, nil
		}
		return OutcomeUnauthenticated, fmt.Errorf("failed to read credentials: %w", err)
	}
	if creds.AccessToken == "" {
		return OutcomeUnauthenticated, nil
	}

	claims := DecodeClaims(creds.AccessToken)
	if claims.Expired(g.now()) {
		refreshed, err := g.session.RefreshAccessToken(ctx)
		if err != nil {
			return OutcomeUnauthenticated, nil
		}
		creds = refreshed
	}

	switch creds.ApprovalState() {
	case storage.ApprovalUnknown:
		return OutcomeMustRegister, nil
	case storage.ApprovalPending:
		return OutcomeUnapproved, nil
	default:
		return OutcomeAuthorized, nil
	}
}

// RequireAuthorized evaluates the guard and converts every non-authorized
// outcome into the matching taxonomy error
func (g *Guard) RequireAuthorized(ctx context.Context) error {
	outcome, err := g.Evaluate(ctx)
	if err != nil {
		return err
	}
	switch outcome {
	case OutcomeAuthorized:
		return nil
	case OutcomeMustRegister:
		return ErrMustRegister
	case OutcomeUnapproved:
		return ErrApprovalPending
	default:
		return ErrAuthRequired
	}
}
