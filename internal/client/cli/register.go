package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/eduline/elearn-client/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	firstName, err := c.io.ReadInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	lastName, err := c.io.ReadInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	userType, err := c.io.ReadInput("Account type (student/teacher): ")
	if err != nil {
		return fmt.Errorf("failed to read account type: %w", err)
	}

	c.io.Println()
	c.io.Println("Registering...")

	resp, err := c.session.Register(ctx, pkgapi.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		UserType:  userType,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("Email: %s\n", resp.Email)
	c.io.Println()
	c.io.Println("An admin has to approve your account before you can use the platform.")
	c.io.Println("Run 'elearn login' once you have been approved.")

	return nil
}
