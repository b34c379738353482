package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/taskplanner/internal/crypto"
	"github.com/iudanet/taskplanner/internal/server/jwt"
	"github.com/iudanet/taskplanner/internal/server/service"
	"github.com/iudanet/taskplanner/internal/server/storage/sqlite"
)

// testUserHeader подставляет владельца в контекст вместо AuthMiddleware
const testUserHeader = "X-Test-User"

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	store *sqlite.Storage
	auth  *service.AuthService
	tasks *service.TaskService
	mux   *http.ServeMux
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := setupTestLogger()
	authSvc := service.NewAuthService(logger, store, crypto.NewHasher(bcrypt.MinCost), jwt.NewService("test-secret", time.Hour))
	taskSvc := service.NewTaskService(logger, store, time.UTC)

	authHandler := NewAuthHandler(logger, authSvc)
	taskHandler := NewTaskHandler(logger, taskSvc, time.UTC)

	withUser := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if userID := r.Header.Get(testUserHeader); userID != "" {
				r = r.WithContext(WithUserID(r.Context(), userID))
			}
			h(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/auth/me", withUser(authHandler.Me))
	mux.HandleFunc("POST /api/v1/auth/validate", authHandler.Validate)

	mux.HandleFunc("POST /api/v1/tasks/add", withUser(taskHandler.Add))
	mux.HandleFunc("GET /api/v1/tasks/all", withUser(taskHandler.All))
	mux.HandleFunc("GET /api/v1/tasks/get/{id}", withUser(taskHandler.Get))
	mux.HandleFunc("PUT /api/v1/tasks/edit/{id}", withUser(taskHandler.Edit))
	mux.HandleFunc("DELETE /api/v1/tasks/delete/{id}", withUser(taskHandler.Delete))
	mux.HandleFunc("PUT /api/v1/tasks/toggle/{id}", withUser(taskHandler.Toggle))
	mux.HandleFunc("GET /api/v1/tasks/status/{done}", withUser(taskHandler.ByStatus))
	mux.HandleFunc("GET /api/v1/tasks/priority/{priority}", withUser(taskHandler.ByPriority))
	mux.HandleFunc("GET /api/v1/tasks/category/{category}", withUser(taskHandler.ByCategory))
	mux.HandleFunc("GET /api/v1/tasks/overdue", withUser(taskHandler.Overdue))
	mux.HandleFunc("GET /api/v1/tasks/today", withUser(taskHandler.Today))
	mux.HandleFunc("GET /api/v1/tasks/starting-soon", withUser(taskHandler.StartingSoon))
	mux.HandleFunc("GET /api/v1/tasks/statistics", withUser(taskHandler.Statistics))

	return &testEnv{store: store, auth: authSvc, tasks: taskSvc, mux: mux}
}

// do выполняет запрос; body сериализуется в JSON, если это не строка
func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}
