package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/storage"
	"github.com/iudanet/taskplanner/internal/server/storage/sqlite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want Kind
	}{
		{name: "nil", err: nil, want: KindInternal},
		{name: "validation", err: ErrValidation, want: KindValidation},
		{name: "wrapped not found", err: taskError(storage.ErrTaskNotFound, 1), want: KindNotFound},
		{name: "conflict", err: errors.Join(errors.New("x"), ErrConflict), want: KindConflict},
		{name: "unauthorized", err: ErrUnauthorized, want: KindUnauthorized},
		{name: "store failure", err: taskError(errors.New("disk I/O error"), 1), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "internal", KindInternal.String())
}

// failingTaskStorage возвращает ошибку из каждого метода
type failingTaskStorage struct {
	err error
}

func (f *failingTaskStorage) CreateTask(context.Context, *models.Task) error { return f.err }
func (f *failingTaskStorage) GetTask(context.Context, int64, string) (*models.Task, error) {
	return nil, f.err
}
func (f *failingTaskStorage) ListTasks(context.Context, storage.TaskFilter) ([]*models.Task, error) {
	return nil, f.err
}
func (f *failingTaskStorage) CountTasks(context.Context, storage.TaskFilter) (int64, error) {
	return 0, f.err
}
func (f *failingTaskStorage) UpdateTask(context.Context, *models.Task, string) error { return f.err }
func (f *failingTaskStorage) ToggleTask(context.Context, int64, string) error        { return f.err }
func (f *failingTaskStorage) DeleteTask(context.Context, int64, string) (bool, error) {
	return false, f.err
}

// recordingTaskStorage запоминает фильтры, переданные в CountTasks
type recordingTaskStorage struct {
	failingTaskStorage
	filters []storage.TaskFilter
}

func (r *recordingTaskStorage) CountTasks(_ context.Context, filter storage.TaskFilter) (int64, error) {
	r.filters = append(r.filters, filter)
	return int64(len(r.filters)), nil
}
