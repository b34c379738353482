package storage

import (
	"context"

	"github.com/iudanet/taskplanner/internal/models"
)

// TaskStorage defines interface for task persistence.
// Every method is scoped by filter.OwnerID / ownerID when it is not empty.
type TaskStorage interface {
	// CreateTask inserts a new task and sets task.ID to the store-assigned id
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a task by id
	// Returns ErrTaskNotFound if task doesn't exist or belongs to another owner
	GetTask(ctx context.Context, id int64, ownerID string) (*models.Task, error)

	// ListTasks returns tasks matching the filter ordered by start time, id
	// Returns empty slice if no tasks found
	ListTasks(ctx context.Context, filter TaskFilter) ([]*models.Task, error)

	// CountTasks returns the number of tasks matching the filter
	CountTasks(ctx context.Context, filter TaskFilter) (int64, error)

	// UpdateTask replaces all mutable fields of the task (owner is never changed)
	// Returns ErrTaskNotFound if no matching owned task exists
	UpdateTask(ctx context.Context, task *models.Task, ownerID string) error

	// ToggleTask flips the done flag in a single statement
	// Returns ErrTaskNotFound if no matching owned task exists
	ToggleTask(ctx context.Context, id int64, ownerID string) error

	// DeleteTask removes the task
	// Returns false if nothing was removed
	DeleteTask(ctx context.Context, id int64, ownerID string) (bool, error)
}
