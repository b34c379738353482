package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskplanner/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	authData, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'taskplanner login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	expiresAt := time.Unix(authData.ExpiresAt, 0)

	if authData.Expired(c.now()) {
		c.io.Println("Status: Session expired")
	} else {
		c.io.Println("Status: Authenticated")
	}
	c.io.Printf("Name:          %s\n", authData.Name)
	c.io.Printf("Email:         %s\n", authData.Email)
	if authData.Server != "" {
		c.io.Printf("Server:        %s\n", authData.Server)
	}
	c.io.Printf("Token expires: %s\n", c.formatTime(expiresAt))

	if remaining := expiresAt.Sub(c.now()); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}

func (c *Cli) runWhoami(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return errNotAuthenticated
	}

	user, err := c.tasks.Me(ctx, token)
	if err != nil {
		return requestError(err, 0)
	}

	c.io.Printf("ID:    %s\n", user.ID)
	c.io.Printf("Name:  %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)

	return nil
}
