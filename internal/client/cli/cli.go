package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduline/elearn-client/internal/client/api"
	"github.com/eduline/elearn-client/internal/client/auth"
	"github.com/eduline/elearn-client/internal/client/iocli"
	"github.com/eduline/elearn-client/internal/client/realtime"
	"github.com/eduline/elearn-client/internal/client/storage"
)

// Cli wires the commands to the session, guard and realtime layers
type Cli struct {
	apiClient *api.Client
	session   *auth.Service
	guard     *auth.Guard
	store     storage.CredentialStorage
	dialer    *realtime.Dialer
	io        iocli.IO
}

func New(
	apiClient *api.Client,
	session *auth.Service,
	guard *auth.Guard,
	store storage.CredentialStorage,
	dialer *realtime.Dialer,
	io iocli.IO,
) *Cli {
	return &Cli{
		apiClient: apiClient,
		session:   session,
		guard:     guard,
		store:     store,
		dialer:    dialer,
		io:        io,
	}
}

// Run dispatches a command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "chat":
		return c.runChat(ctx)
	case "notifications":
		return c.runNotifications(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireAuthorized runs the session guard and translates non-authorized
// outcomes into user guidance. Protected commands call this before doing
// anything else.
func (c *Cli) requireAuthorized(ctx context.Context) error {
	err := c.guard.RequireAuthorized(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrMustRegister):
		c.io.Println("No account registration found for this session.")
		c.io.Println("Run 'elearn register' first, or 'elearn login' to refresh your session.")
		return err
	case errors.Is(err, auth.ErrApprovalPending):
		c.io.Println("Your account is pending approval by the admin. Please check back later.")
		return err
	case errors.Is(err, auth.ErrAuthRequired):
		c.io.Println("Not authenticated. Run 'elearn login' first.")
		return err
	default:
		return err
	}
}

func PrintUsage() {
	fmt.Println("eLearning Platform Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  elearn [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8000)")
	fmt.Println("  --ws URL         Websocket base URL (default: derived from --server)")
	fmt.Println("  --db PATH        Path to local database (default: elearn-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register         Register a new account (requires admin approval)")
	fmt.Println("  login            Login to the platform")
	fmt.Println("  logout           Logout and clear the local session")
	fmt.Println("  status           Show session status")
	fmt.Println("  whoami           Show the logged-in user profile")
	fmt.Println("  chat             Open the live chat room")
	fmt.Println("  notifications    Show notifications and follow live updates")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  elearn register")
	fmt.Println("  elearn login")
	fmt.Println("  elearn chat")
	fmt.Println("  elearn --server https://elearn.example.com notifications")
}
