package cli

import (
	"context"
	"fmt"

	"github.com/eduline/elearn-client/internal/client/storage"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("User: %s (id %s)\n", result.Email, result.UserID)

	switch result.Approval {
	case storage.ApprovalApproved:
		c.io.Println("Your session has been saved.")
	case storage.ApprovalPending:
		c.io.Println()
		c.io.Println("Your account is pending approval by the admin.")
		c.io.Println("Protected commands stay unavailable until you are approved.")
	default:
		c.io.Println()
		c.io.Println("Could not determine the approval state of your account.")
	}

	return nil
}
