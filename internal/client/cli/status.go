package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eduline/elearn-client/internal/client/auth"
	"github.com/eduline/elearn-client/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	creds, err := c.store.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'elearn login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	outcome, err := c.guard.Evaluate(ctx)
	if err != nil {
		return fmt.Errorf("failed to evaluate session: %w", err)
	}

	c.io.Printf("Status: %s\n", outcome)
	if creds.UserID != "" {
		c.io.Printf("User id: %s\n", creds.UserID)
	}

	claims := auth.DecodeClaims(creds.AccessToken)
	if claims.ExpiresAt > 0 {
		expiresAt := time.Unix(claims.ExpiresAt, 0)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Token has expired; the next protected command will refresh it.")
		}
	}

	switch outcome {
	case auth.OutcomeUnapproved:
		c.io.Println()
		c.io.Println("Your account is pending approval by the admin.")
	case auth.OutcomeMustRegister:
		c.io.Println()
		c.io.Println("No account registration found. Run 'elearn register'.")
	case auth.OutcomeUnauthenticated:
		c.io.Println()
		c.io.Println("Run 'elearn login' to authenticate.")
	}

	return nil
}
