package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/eduline/elearn-client/internal/client/identity"
)

// identityLookup builds the identity cache lookup on top of the user detail
// endpoint. Display name follows the platform convention "First Last".
func (c *Cli) identityLookup() identity.LookupFunc {
	return func(ctx context.Context, userID string) (identity.Identity, error) {
		user, err := c.apiClient.GetUser(ctx, userID)
		if err != nil {
			return identity.Identity{}, err
		}
		name := strings.TrimSpace(user.FirstName + " " + user.LastName)
		if name == "" {
			return identity.Identity{}, fmt.Errorf("user %s has no name", userID)
		}
		return identity.Identity{UserID: userID, DisplayName: name}, nil
	}
}
