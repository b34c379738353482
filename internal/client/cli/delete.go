package cli

import (
	"context"
	"fmt"
	"slices"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "delete")
	if err != nil {
		return err
	}
	skipConfirm := slices.Contains(args[1:], "--yes") || slices.Contains(args[1:], "-y")

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	// Сначала получаем задачу, чтобы показать, что будет удалено
	task, err := c.tasks.GetTask(ctx, token, id)
	if err != nil {
		return requestError(err, id)
	}

	c.io.Println("=== Delete Task ===")
	c.io.Println()
	c.io.Println("About to delete:")
	c.io.Printf("  #%d %s\n", task.ID, task.Description)
	c.io.Printf("  %s - %s\n", c.formatTime(task.StartTime), c.formatTime(task.EndTime))
	c.io.Println()

	if !skipConfirm {
		confirm, err := c.io.ReadInput("Are you sure you want to delete this task? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}

		if confirm != "yes" && confirm != "y" {
			c.io.Println()
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.tasks.DeleteTask(ctx, token, id); err != nil {
		return requestError(err, id)
	}

	c.io.Println()
	c.io.Println("✓ Task deleted successfully!")

	return nil
}
