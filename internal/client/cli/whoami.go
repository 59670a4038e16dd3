package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	if err := c.requireAuthorized(ctx); err != nil {
		return err
	}

	creds, err := c.store.GetCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	user, err := c.apiClient.GetUser(ctx, creds.UserID)
	if err != nil {
		return err
	}

	c.io.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	c.io.Printf("Account type: %s\n", user.UserType)
	c.io.Printf("Approved: %t\n", user.IsApproved)

	return nil
}
