package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 6 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	c.io.Println()
	c.io.Println("Registering user...")

	authData, err := c.authService.Register(ctx, name, email, password, confirmPassword)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", authData.UserID)
	c.io.Printf("Name:    %s\n", authData.Name)
	c.io.Printf("Email:   %s\n", authData.Email)
	c.io.Println()
	c.io.Println("You are logged in. Run 'taskplanner add' to create your first task.")

	return nil
}
