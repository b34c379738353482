package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/storage"
)

const taskColumns = `id, user_id, description, start_time, end_time, done, priority, category, notes`

// CreateTask inserts a new task and assigns its ID
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (user_id, description, start_time, end_time, done, priority, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		nullString(task.OwnerID),
		task.Description,
		task.StartTime.UTC(),
		task.EndTime.UTC(),
		task.Done,
		task.Priority,
		task.Category,
		task.Notes,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by ID, scoped by owner when ownerID is not empty
func (s *Storage) GetTask(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	query, args := scoped(`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, []any{id}, ownerID)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasks returns tasks matching the filter
func (s *Storage) ListTasks(ctx context.Context, filter storage.TaskFilter) (tasks []*models.Task, err error) {
	where, args := filter.Where(dialect)
	query := `SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY start_time, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tasks = make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// CountTasks returns the number of tasks matching the filter
func (s *Storage) CountTasks(ctx context.Context, filter storage.TaskFilter) (int64, error) {
	where, args := filter.Where(dialect)

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

// UpdateTask replaces the mutable fields of the task
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task, ownerID string) error {
	query, args := scoped(`
		UPDATE tasks
		SET description = $2, start_time = $3, end_time = $4, done = $5,
		    priority = $6, category = $7, notes = $8
		WHERE id = $1`,
		[]any{
			task.ID,
			task.Description,
			task.StartTime.UTC(),
			task.EndTime.UTC(),
			task.Done,
			task.Priority,
			task.Category,
			task.Notes,
		},
		ownerID,
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return requireAffected(result, storage.ErrTaskNotFound)
}

// ToggleTask flips the done flag
func (s *Storage) ToggleTask(ctx context.Context, id int64, ownerID string) error {
	query, args := scoped(`UPDATE tasks SET done = NOT done WHERE id = $1`, []any{id}, ownerID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	return requireAffected(result, storage.ErrTaskNotFound)
}

// DeleteTask removes the task, reporting whether a row was deleted
func (s *Storage) DeleteTask(ctx context.Context, id int64, ownerID string) (bool, error) {
	query, args := scoped(`DELETE FROM tasks WHERE id = $1`, []any{id}, ownerID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// scoped дописывает условие по владельцу следующим по номеру плейсхолдером
func scoped(query string, args []any, ownerID string) (string, []any) {
	if ownerID == "" {
		return query, args
	}
	args = append(args, ownerID)
	return query + ` AND user_id = $` + strconv.Itoa(len(args)), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var (
		ownerID            sql.NullString
		startTime, endTime time.Time
	)

	err := row.Scan(
		&task.ID,
		&ownerID,
		&task.Description,
		&startTime,
		&endTime,
		&task.Done,
		&task.Priority,
		&task.Category,
		&task.Notes,
	)
	if err != nil {
		return nil, err
	}

	task.OwnerID = ownerID.String
	task.StartTime = startTime.UTC()
	task.EndTime = endTime.UTC()

	return task, nil
}

func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
