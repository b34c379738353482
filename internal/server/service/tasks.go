package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/storage"
	"github.com/iudanet/taskplanner/internal/validation"
)

// StartingSoonWindow окно для выборки "скоро начнутся"
const StartingSoonWindow = time.Hour

// TaskInput carries client-supplied task fields for add and update.
// Done is only applied on update, and only when set.
type TaskInput struct {
	StartTime   time.Time
	EndTime     time.Time
	Done        *bool
	Description string
	Priority    string
	Category    string
	Notes       string
}

// TaskService реализует операции над задачами.
// ownerID == "" означает однопользовательский режим без фильтра по владельцу.
type TaskService struct {
	logger *slog.Logger
	tasks  storage.TaskStorage
	now    func() time.Time
	loc    *time.Location
}

// NewTaskService создает сервис задач. loc задает границы дня для Today;
// nil означает time.Local.
func NewTaskService(logger *slog.Logger, tasks storage.TaskStorage, loc *time.Location) *TaskService {
	if loc == nil {
		loc = time.Local
	}
	return &TaskService{
		logger: logger,
		tasks:  tasks,
		now:    time.Now,
		loc:    loc,
	}
}

// AddTask validates and stores a new task. Client id and done flag are ignored.
func (s *TaskService) AddTask(ctx context.Context, input TaskInput, ownerID string) (*models.Task, error) {
	task := input.task()
	task.OwnerID = ownerID

	if err := validation.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.DebugContext(ctx, "task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", ownerID))

	return task, nil
}

// GetAll returns every task ordered by priority rank, then by end time.
func (s *TaskService) GetAll(ctx context.Context, ownerID string) ([]*models.Task, error) {
	tasks, err := s.list(ctx, storage.TaskFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := models.PriorityRank(tasks[i].Priority), models.PriorityRank(tasks[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return tasks[i].EndTime.Before(tasks[j].EndTime)
	})

	return tasks, nil
}

// GetByID returns a single task
func (s *TaskService) GetByID(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	task, err := s.tasks.GetTask(ctx, id, ownerID)
	if err != nil {
		return nil, taskError(err, id)
	}
	return task, nil
}

// Update replaces every editable field of the task. The done flag changes
// only when input.Done is set. Concurrent updates: last writer wins.
func (s *TaskService) Update(ctx context.Context, id int64, input TaskInput, ownerID string) (*models.Task, error) {
	existing, err := s.tasks.GetTask(ctx, id, ownerID)
	if err != nil {
		return nil, taskError(err, id)
	}

	task := input.task()
	task.ID = id

	if err := validation.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	task.OwnerID = existing.OwnerID
	task.Done = existing.Done
	if input.Done != nil {
		task.Done = *input.Done
	}

	if err := s.tasks.UpdateTask(ctx, task, ownerID); err != nil {
		return nil, taskError(err, id)
	}

	return task, nil
}

// Delete removes the task
func (s *TaskService) Delete(ctx context.Context, id int64, ownerID string) error {
	deleted, err := s.tasks.DeleteTask(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: task %d", ErrNotFound, id)
	}

	s.logger.DebugContext(ctx, "task deleted", slog.Int64("task_id", id))

	return nil
}

// ToggleStatus flips the done flag and returns the updated task
func (s *TaskService) ToggleStatus(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	if err := s.tasks.ToggleTask(ctx, id, ownerID); err != nil {
		return nil, taskError(err, id)
	}
	return s.GetByID(ctx, id, ownerID)
}

// FilterByStatus returns tasks with the given done flag
func (s *TaskService) FilterByStatus(ctx context.Context, done bool, ownerID string) ([]*models.Task, error) {
	return s.list(ctx, storage.TaskFilter{OwnerID: ownerID, Done: &done})
}

// FilterByPriority returns tasks whose priority equals value exactly
func (s *TaskService) FilterByPriority(ctx context.Context, value, ownerID string) ([]*models.Task, error) {
	return s.list(ctx, storage.TaskFilter{OwnerID: ownerID, Priority: &value})
}

// FilterByCategory returns tasks whose category equals value exactly
func (s *TaskService) FilterByCategory(ctx context.Context, value, ownerID string) ([]*models.Task, error) {
	return s.list(ctx, storage.TaskFilter{OwnerID: ownerID, Category: &value})
}

// Overdue returns unfinished tasks whose end time has passed
func (s *TaskService) Overdue(ctx context.Context, ownerID string) ([]*models.Task, error) {
	return s.list(ctx, s.overdueFilter(ownerID))
}

// Today returns tasks starting within the current calendar day
func (s *TaskService) Today(ctx context.Context, ownerID string) ([]*models.Task, error) {
	return s.list(ctx, s.todayFilter(ownerID))
}

// StartingSoon returns unfinished tasks starting within the next hour
func (s *TaskService) StartingSoon(ctx context.Context, ownerID string) ([]*models.Task, error) {
	now := s.clock()
	return s.list(ctx, storage.TaskFilter{
		OwnerID:     ownerID,
		Done:        storage.BoolPtr(false),
		StartFrom:   storage.TimePtr(now),
		StartBefore: storage.TimePtr(now.Add(StartingSoonWindow)),
	})
}

// Statistics computes the dashboard counters. Counts are independent reads.
func (s *TaskService) Statistics(ctx context.Context, ownerID string) (*models.TaskStatistics, error) {
	stats := &models.TaskStatistics{}

	counters := []struct {
		dst    *int64
		filter storage.TaskFilter
	}{
		{&stats.TotalTasks, storage.TaskFilter{OwnerID: ownerID}},
		{&stats.CompletedTasks, storage.TaskFilter{OwnerID: ownerID, Done: storage.BoolPtr(true)}},
		{&stats.HighPriorityTasks, storage.TaskFilter{OwnerID: ownerID, Priority: storage.StringPtr(models.PriorityHigh)}},
		{&stats.WorkTasks, storage.TaskFilter{OwnerID: ownerID, Category: storage.StringPtr(models.CategoryWork)}},
		{&stats.PersonalTasks, storage.TaskFilter{OwnerID: ownerID, Category: storage.StringPtr(models.CategoryPersonal)}},
		{&stats.TodayTasks, s.todayFilter(ownerID)},
		{&stats.OverdueTasks, s.overdueFilter(ownerID)},
	}

	for _, c := range counters {
		n, err := s.tasks.CountTasks(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}
		*c.dst = n
	}

	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks

	return stats, nil
}

func (s *TaskService) list(ctx context.Context, filter storage.TaskFilter) ([]*models.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) overdueFilter(ownerID string) storage.TaskFilter {
	return storage.TaskFilter{
		OwnerID:   ownerID,
		Done:      storage.BoolPtr(false),
		EndBefore: storage.TimePtr(s.clock()),
	}
}

// todayFilter: [начало дня, начало следующего дня) в часовом поясе сервиса
func (s *TaskService) todayFilter(ownerID string) storage.TaskFilter {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 1)

	return storage.TaskFilter{
		OwnerID:     ownerID,
		StartFrom:   storage.TimePtr(normalizeTime(start)),
		StartBefore: storage.TimePtr(normalizeTime(end)),
	}
}

func (in TaskInput) task() *models.Task {
	return &models.Task{
		Description: strings.TrimSpace(in.Description),
		StartTime:   normalizeTime(in.StartTime),
		EndTime:     normalizeTime(in.EndTime),
		Priority:    orDefault(in.Priority, models.DefaultPriority),
		Category:    orDefault(in.Category, models.DefaultCategory),
		Notes:       in.Notes,
	}
}

func taskError(err error, id int64) error {
	if errors.Is(err, storage.ErrTaskNotFound) {
		return fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	return fmt.Errorf("task %d: %w", id, err)
}

// clock возвращает текущее время, округленное вверх до миллисекунды.
// Хранимые времена кратны миллисекунде, поэтому строгие сравнения
// с округленным вверх значением совпадают со сравнениями с точным.
func (s *TaskService) clock() time.Time {
	now := s.now().UTC()
	truncated := now.Truncate(time.Millisecond)
	if truncated.Before(now) {
		return truncated.Add(time.Millisecond)
	}
	return truncated
}

// normalizeTime приводит время к UTC с точностью до миллисекунд (как хранится в БД)
func normalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Millisecond)
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
