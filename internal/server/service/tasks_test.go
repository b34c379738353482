package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/storage/sqlite"
)

// fixedNow: вторник, 10 марта 2026, 12:00 UTC
var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestTaskService(t *testing.T) (*TaskService, *sqlite.Storage) {
	t.Helper()

	store := setupTestStorage(t)
	svc := NewTaskService(testLogger(), store, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	return svc, store
}

func createOwner(t *testing.T, store *sqlite.Storage) string {
	t.Helper()

	id := uuid.New().String()
	require.NoError(t, store.CreateUser(context.Background(), &models.User{
		ID:           id,
		Name:         "Owner",
		Email:        id + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    fixedNow,
	}))

	return id
}

func input(description string, start, end time.Time) TaskInput {
	return TaskInput{
		Description: description,
		StartTime:   start,
		EndTime:     end,
	}
}

func descriptions(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Description)
	}
	return out
}

func TestTaskService_AddTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	done := true
	in := input("  Buy milk ", fixedNow.Add(30*time.Minute+123456*time.Nanosecond), fixedNow.Add(time.Hour))
	in.Done = &done

	task, err := svc.AddTask(ctx, in, "")
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, "Buy milk", task.Description)
	assert.False(t, task.Done, "done flag from the client is ignored")
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.CategoryPersonal, task.Category)
	assert.Equal(t, time.UTC, task.StartTime.Location())
	assert.Zero(t, task.StartTime.Nanosecond()%int(time.Millisecond))

	got, err := svc.GetByID(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskService_AddTask_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       TaskInput
		wantMessage string
	}{
		{
			name:        "empty description",
			input:       input("", fixedNow, fixedNow.Add(time.Hour)),
			wantMessage: "description is required",
		},
		{
			name:        "blank description",
			input:       input("   ", fixedNow, fixedNow.Add(time.Hour)),
			wantMessage: "description is required",
		},
		{
			name:        "missing start",
			input:       input("task", time.Time{}, fixedNow),
			wantMessage: "start time is required",
		},
		{
			name:        "missing end",
			input:       input("task", fixedNow, time.Time{}),
			wantMessage: "end time is required",
		},
		{
			name: "notes too long",
			input: TaskInput{
				Description: "task",
				StartTime:   fixedNow,
				EndTime:     fixedNow,
				Notes:       strings.Repeat("x", models.MaxNotesLen+1),
			},
			wantMessage: "notes must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newTestTaskService(t)

			task, err := svc.AddTask(ctx, tt.input, "")
			require.Error(t, err)
			assert.Nil(t, task)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMessage)

			all, err := svc.GetAll(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestTaskService_AddTask_EndBeforeStartAllowed(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.AddTask(context.Background(), input("backwards", fixedNow, fixedNow.Add(-time.Hour)), "")
	assert.NoError(t, err)
}

func TestTaskService_AddTask_NotesAtLimit(t *testing.T) {
	svc, _ := newTestTaskService(t)

	in := input("notes", fixedNow, fixedNow)
	in.Notes = strings.Repeat("ж", models.MaxNotesLen)

	task, err := svc.AddTask(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, in.Notes, task.Notes)
}

func TestTaskService_GetAll_PriorityOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	add := func(description, priority string, end time.Time) {
		in := input(description, fixedNow, end)
		in.Priority = priority
		_, err := svc.AddTask(ctx, in, "")
		require.NoError(t, err)
	}

	add("low", models.PriorityLow, fixedNow.Add(time.Hour))
	add("custom", "Urgent", fixedNow.Add(time.Minute))
	add("high late", models.PriorityHigh, fixedNow.Add(5*time.Hour))
	add("medium", "", fixedNow.Add(2*time.Hour))
	add("high early", models.PriorityHigh, fixedNow.Add(time.Hour))

	tasks, err := svc.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"high early", "high late", "medium", "low", "custom"}, descriptions(tasks))

	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]
		rp, rc := models.PriorityRank(prev.Priority), models.PriorityRank(cur.Priority)
		assert.True(t, rp < rc || (rp == rc && !cur.EndTime.Before(prev.EndTime)))
	}
}

func TestTaskService_Ownership(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTaskService(t)

	owner := createOwner(t, store)
	stranger := createOwner(t, store)

	task, err := svc.AddTask(ctx, input("mine", fixedNow, fixedNow.Add(time.Hour)), owner)
	require.NoError(t, err)
	assert.Equal(t, owner, task.OwnerID)

	_, err = svc.GetByID(ctx, task.ID, stranger)
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.Update(ctx, task.ID, input("stolen", fixedNow, fixedNow), stranger)
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.ToggleStatus(ctx, task.ID, stranger)
	assert.Equal(t, KindNotFound, KindOf(err))

	err = svc.Delete(ctx, task.ID, stranger)
	assert.Equal(t, KindNotFound, KindOf(err))

	all, err := svc.GetAll(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, all)

	stats, err := svc.Statistics(ctx, stranger)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)

	got, err := svc.GetByID(ctx, task.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Description)
	assert.False(t, got.Done)
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTaskService(t)
	owner := createOwner(t, store)

	in := input("draft", fixedNow, fixedNow.Add(time.Hour))
	in.Priority = models.PriorityHigh
	in.Category = models.CategoryWork
	in.Notes = "first"
	task, err := svc.AddTask(ctx, in, owner)
	require.NoError(t, err)

	t.Run("full replace keeps done when not set", func(t *testing.T) {
		_, err := svc.ToggleStatus(ctx, task.ID, owner)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, task.ID, input("final", fixedNow.Add(time.Hour), fixedNow.Add(2*time.Hour)), owner)
		require.NoError(t, err)

		assert.Equal(t, task.ID, updated.ID)
		assert.Equal(t, "final", updated.Description)
		assert.Equal(t, models.DefaultPriority, updated.Priority)
		assert.Equal(t, models.DefaultCategory, updated.Category)
		assert.Empty(t, updated.Notes)
		assert.True(t, updated.Done)
		assert.Equal(t, owner, updated.OwnerID)

		got, err := svc.GetByID(ctx, task.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("done applied when set", func(t *testing.T) {
		done := false
		upd := input("final", fixedNow, fixedNow)
		upd.Done = &done

		updated, err := svc.Update(ctx, task.ID, upd, owner)
		require.NoError(t, err)
		assert.False(t, updated.Done)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Update(ctx, task.ID, input("", fixedNow, fixedNow), owner)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, input("ghost", fixedNow, fixedNow), owner)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("missing task wins over invalid body", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, input("", time.Time{}, time.Time{}), owner)
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestTaskService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	task, err := svc.AddTask(ctx, input("toggle", fixedNow, fixedNow), "")
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(ctx, task.ID, "")
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	toggled, err = svc.ToggleStatus(ctx, task.ID, "")
	require.NoError(t, err)
	assert.False(t, toggled.Done)

	_, err = svc.ToggleStatus(ctx, 999, "")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	task, err := svc.AddTask(ctx, input("delete", fixedNow, fixedNow), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID, ""))

	_, err = svc.GetByID(ctx, task.ID, "")
	assert.Equal(t, KindNotFound, KindOf(err))

	err = svc.Delete(ctx, task.ID, "")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTaskService_Filters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	mk := func(description, priority, category string) *models.Task {
		in := input(description, fixedNow, fixedNow.Add(time.Hour))
		in.Priority = priority
		in.Category = category
		task, err := svc.AddTask(ctx, in, "")
		require.NoError(t, err)
		return task
	}

	mk("a", models.PriorityHigh, models.CategoryWork)
	b := mk("b", models.PriorityLow, "Shopping")
	mk("c", models.PriorityHigh, models.CategoryPersonal)

	_, err := svc.ToggleStatus(ctx, b.ID, "")
	require.NoError(t, err)

	done, err := svc.FilterByStatus(ctx, true, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, descriptions(done))

	pending, err := svc.FilterByStatus(ctx, false, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, descriptions(pending))

	high, err := svc.FilterByPriority(ctx, models.PriorityHigh, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, descriptions(high))

	lower, err := svc.FilterByPriority(ctx, "high", "")
	require.NoError(t, err)
	assert.Empty(t, lower)

	shopping, err := svc.FilterByCategory(ctx, "Shopping", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, descriptions(shopping))
}

func TestTaskService_Overdue(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	add := func(description string, end time.Time, done bool) {
		task, err := svc.AddTask(ctx, input(description, end.Add(-time.Hour), end), "")
		require.NoError(t, err)
		if done {
			_, err = svc.ToggleStatus(ctx, task.ID, "")
			require.NoError(t, err)
		}
	}

	add("ended a minute ago", fixedNow.Add(-time.Minute), false)
	add("ends exactly now", fixedNow, false)
	add("ends later", fixedNow.Add(time.Minute), false)
	add("done and ended", fixedNow.Add(-time.Hour), true)

	tasks, err := svc.Overdue(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ended a minute ago"}, descriptions(tasks))

	for _, task := range tasks {
		assert.False(t, task.Done)
		assert.True(t, task.EndTime.Before(fixedNow))
	}
}

func TestTaskService_StartingSoon(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	add := func(description string, start time.Time, done bool) {
		task, err := svc.AddTask(ctx, input(description, start, start.Add(time.Hour)), "")
		require.NoError(t, err)
		if done {
			_, err = svc.ToggleStatus(ctx, task.ID, "")
			require.NoError(t, err)
		}
	}

	add("started", fixedNow.Add(-time.Second), false)
	add("now", fixedNow, false)
	add("in 59 minutes", fixedNow.Add(59*time.Minute), false)
	add("in one hour", fixedNow.Add(time.Hour), false)
	add("done soon", fixedNow.Add(10*time.Minute), true)

	tasks, err := svc.StartingSoon(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"now", "in 59 minutes"}, descriptions(tasks))
}

// Текущее время с долями миллисекунды не должно сдвигать строгие границы
func TestTaskService_SubMillisecondNow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)
	svc.now = func() time.Time { return fixedNow.Add(500 * time.Microsecond) }

	_, err := svc.AddTask(ctx, input("ended at T", fixedNow.Add(-time.Hour), fixedNow), "")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, input("started at T", fixedNow, fixedNow.Add(time.Hour)), "")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, input("starts at T+1ms", fixedNow.Add(time.Millisecond), fixedNow.Add(time.Hour)), "")
	require.NoError(t, err)

	overdue, err := svc.Overdue(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ended at T"}, descriptions(overdue))

	soon, err := svc.StartingSoon(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"starts at T+1ms"}, descriptions(soon))

	stats, err := svc.Statistics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.OverdueTasks)
}

func TestTaskService_Clock(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "aligned", now: fixedNow, want: fixedNow},
		{name: "sub-millisecond rounds up", now: fixedNow.Add(time.Nanosecond), want: fixedNow.Add(time.Millisecond)},
		{name: "non-UTC zone", now: fixedNow.In(time.FixedZone("X", 3*3600)).Add(1500 * time.Microsecond), want: fixedNow.Add(2 * time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &TaskService{now: func() time.Time { return tt.now }}
			got := svc.clock()
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestTaskService_Today(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTaskService(t)

	startOfDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	add := func(description string, start time.Time) {
		_, err := svc.AddTask(ctx, input(description, start, start.Add(time.Hour)), "")
		require.NoError(t, err)
	}

	add("yesterday late", startOfDay.Add(-time.Millisecond))
	add("midnight", startOfDay)
	add("evening", startOfDay.Add(23*time.Hour+59*time.Minute))
	add("tomorrow", startOfDay.Add(24*time.Hour))

	tasks, err := svc.Today(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"midnight", "evening"}, descriptions(tasks))
}

func TestTaskService_Today_TimeZone(t *testing.T) {
	ctx := context.Background()
	store := setupTestStorage(t)

	// UTC+3 без перехода на летнее время
	loc := time.FixedZone("MSK", 3*60*60)
	svc := NewTaskService(testLogger(), store, loc)
	// 22:30 UTC 10 марта = 01:30 11 марта по местному времени
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC) }

	_, err := svc.AddTask(ctx, input("local morning", time.Date(2026, 3, 11, 9, 0, 0, 0, loc), time.Date(2026, 3, 11, 10, 0, 0, 0, loc)), "")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, input("utc morning", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)), "")
	require.NoError(t, err)

	tasks, err := svc.Today(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"local morning"}, descriptions(tasks))
}

func TestTaskService_Statistics(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTaskService(t)
	owner := createOwner(t, store)

	add := func(description, priority, category string, start, end time.Time, done bool) {
		in := input(description, start, end)
		in.Priority = priority
		in.Category = category
		task, err := svc.AddTask(ctx, in, owner)
		require.NoError(t, err)
		if done {
			_, err = svc.ToggleStatus(ctx, task.ID, owner)
			require.NoError(t, err)
		}
	}

	// overdue, today, high, work
	add("report", models.PriorityHigh, models.CategoryWork, fixedNow.Add(-2*time.Hour), fixedNow.Add(-time.Hour), false)
	// done, today, personal
	add("gym", models.PriorityLow, models.CategoryPersonal, fixedNow.Add(time.Hour), fixedNow.Add(2*time.Hour), true)
	// tomorrow, personal by default
	add("call", "", "", fixedNow.Add(24*time.Hour), fixedNow.Add(25*time.Hour), false)
	// other category, done and ended: not overdue
	add("groceries", models.PriorityHigh, "Shopping", fixedNow.Add(-48*time.Hour), fixedNow.Add(-47*time.Hour), true)

	stats, err := svc.Statistics(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, &models.TaskStatistics{
		TotalTasks:        4,
		CompletedTasks:    2,
		PendingTasks:      2,
		HighPriorityTasks: 2,
		WorkTasks:         1,
		PersonalTasks:     2,
		TodayTasks:        2,
		OverdueTasks:      1,
	}, stats)
	assert.Equal(t, stats.TotalTasks, stats.CompletedTasks+stats.PendingTasks)
}

func TestTaskService_Statistics_Filters(t *testing.T) {
	rec := &recordingTaskStorage{}
	svc := NewTaskService(testLogger(), rec, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	stats, err := svc.Statistics(context.Background(), "owner")
	require.NoError(t, err)
	require.Len(t, rec.filters, 7)

	for _, f := range rec.filters {
		assert.Equal(t, "owner", f.OwnerID)
	}

	overdue := rec.filters[6]
	require.NotNil(t, overdue.Done)
	assert.False(t, *overdue.Done)
	require.NotNil(t, overdue.EndBefore)
	assert.True(t, fixedNow.Equal(*overdue.EndBefore))

	assert.Equal(t, stats.TotalTasks-stats.CompletedTasks, stats.PendingTasks)
}

func TestTaskService_StoreFailuresAreInternal(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("database is locked")
	svc := NewTaskService(testLogger(), &failingTaskStorage{err: storeErr}, time.UTC)

	_, err := svc.AddTask(ctx, input("x", fixedNow, fixedNow), "")
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, KindInternal, KindOf(err))

	_, err = svc.GetAll(ctx, "")
	assert.Equal(t, KindInternal, KindOf(err))

	_, err = svc.GetByID(ctx, 1, "")
	assert.Equal(t, KindInternal, KindOf(err))

	err = svc.Delete(ctx, 1, "")
	assert.Equal(t, KindInternal, KindOf(err))

	_, err = svc.ToggleStatus(ctx, 1, "")
	assert.Equal(t, KindInternal, KindOf(err))

	_, err = svc.Statistics(ctx, "")
	assert.ErrorIs(t, err, storeErr)
}

