package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskplanner/internal/client/storage"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.getPassword()
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	authData, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome, %s\n", authData.Name)
	c.io.Printf("Token expires: %s\n", c.formatTime(time.Unix(authData.ExpiresAt, 0)))

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("You are not logged in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
