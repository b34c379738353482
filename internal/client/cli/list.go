package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskplanner/internal/client/api"
	pkgapi "github.com/iudanet/taskplanner/pkg/api"
)

const listUsage = "Usage: taskplanner list [all|done|pending|priority <P>|category <C>|overdue|today|soon]"

// parseView переводит аргументы list в выборку сервера и заголовок
func parseView(args []string) (view, title string, err error) {
	if len(args) == 0 {
		return api.ViewAll, "All Tasks", nil
	}

	switch args[0] {
	case "all":
		return api.ViewAll, "All Tasks", nil
	case "done":
		return api.ViewStatus(true), "Completed Tasks", nil
	case "pending":
		return api.ViewStatus(false), "Pending Tasks", nil
	case "overdue":
		return api.ViewOverdue, "Overdue Tasks", nil
	case "today":
		return api.ViewToday, "Today's Tasks", nil
	case "soon":
		return api.ViewStartingSoon, "Starting Within an Hour", nil
	case "priority", "category":
		if len(args) < 2 || args[1] == "" {
			return "", "", fmt.Errorf("missing %s value. %s", args[0], listUsage)
		}
		if args[0] == "priority" {
			p := normalizePriority(args[1])
			return api.ViewPriority(p), p + " Priority Tasks", nil
		}
		cat := normalizeCategory(args[1])
		return api.ViewCategory(cat), cat + " Tasks", nil
	default:
		return "", "", fmt.Errorf("unknown view: %s. %s", args[0], listUsage)
	}
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	view, title, err := parseView(args)
	if err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	tasks, err := c.tasks.ListTasks(ctx, token, view)
	if err != nil {
		return requestError(err, 0)
	}

	return c.render("list", taskListTemplate, struct {
		Title string
		Tasks []pkgapi.Task
	}{Title: title, Tasks: tasks})
}
