package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskplanner/internal/models"
	pkgapi "github.com/iudanet/taskplanner/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Task ===")
	c.io.Println()

	req, err := c.readTask(&pkgapi.Task{
		Priority: models.DefaultPriority,
		Category: models.DefaultCategory,
	})
	if err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	task, err := c.tasks.AddTask(ctx, token, req)
	if err != nil {
		return requestError(err, 0)
	}

	c.io.Println()
	c.io.Println("✓ Task added successfully!")
	return c.printTask(task)
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "edit")
	if err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	current, err := c.tasks.GetTask(ctx, token, id)
	if err != nil {
		return requestError(err, id)
	}

	c.io.Printf("=== Edit Task #%d ===\n", id)
	c.io.Println("Press Enter to keep the current value, '-' clears notes.")
	c.io.Println()

	req, err := c.readTask(current)
	if err != nil {
		return err
	}

	task, err := c.tasks.EditTask(ctx, token, id, req)
	if err != nil {
		return requestError(err, id)
	}

	c.io.Println()
	c.io.Println("✓ Task updated successfully!")
	return c.printTask(task)
}

// readTask запрашивает поля задачи, current задает значения по умолчанию.
// Статус выполнения не редактируется, для него есть toggle.
func (c *Cli) readTask(current *pkgapi.Task) (pkgapi.TaskRequest, error) {
	var req pkgapi.TaskRequest

	description, err := c.readField("Description", current.Description)
	if err != nil {
		return req, err
	}
	if description == "" {
		return req, fmt.Errorf("description cannot be empty")
	}

	start, err := c.readTime("Start", current.StartTime)
	if err != nil {
		return req, err
	}

	end, err := c.readTime("End", current.EndTime)
	if err != nil {
		return req, err
	}

	priority, err := c.readField("Priority (High/Medium/Low)", current.Priority)
	if err != nil {
		return req, err
	}

	category, err := c.readField("Category (Work/Personal)", current.Category)
	if err != nil {
		return req, err
	}

	notes, err := c.readField("Notes (optional)", current.Notes)
	if err != nil {
		return req, err
	}
	if notes == clearValue {
		notes = ""
	}

	return pkgapi.TaskRequest{
		StartTime:   pkgapi.NewTimestamp(start),
		EndTime:     pkgapi.NewTimestamp(end),
		Description: description,
		Priority:    normalizePriority(priority),
		Category:    normalizeCategory(category),
		Notes:       notes,
	}, nil
}
