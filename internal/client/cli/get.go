package cli

import "context"

func (c *Cli) runGet(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "get")
	if err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	task, err := c.tasks.GetTask(ctx, token, id)
	if err != nil {
		return requestError(err, id)
	}

	return c.printTask(task)
}

func (c *Cli) runToggle(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "toggle")
	if err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	task, err := c.tasks.ToggleTask(ctx, token, id)
	if err != nil {
		return requestError(err, id)
	}

	if task.Done {
		c.io.Printf("✓ Task #%d marked as done\n", task.ID)
	} else {
		c.io.Printf("✓ Task #%d marked as not done\n", task.ID)
	}

	return nil
}

func (c *Cli) runStats(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	stats, err := c.tasks.Statistics(ctx, token)
	if err != nil {
		return requestError(err, 0)
	}

	return c.render("statistics", statisticsTemplate, stats)
}
