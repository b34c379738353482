package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/service"
	"github.com/iudanet/taskplanner/pkg/api"
)

// TaskHandler обрабатывает запросы к задачам.
// Владелец берется из контекста; без AuthMiddleware запросы идут без фильтра по владельцу.
type TaskHandler struct {
	responder
	tasks *service.TaskService
	loc   *time.Location
}

// NewTaskHandler создает handler задач. loc используется для времени без часового пояса.
func NewTaskHandler(logger *slog.Logger, tasks *service.TaskService, loc *time.Location) *TaskHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TaskHandler{
		responder: responder{logger: logger},
		tasks:     tasks,
		loc:       loc,
	}
}

// Add обрабатывает POST /api/v1/tasks/add
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.AddTask(ctx, input, owner(r))
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, toAPITask(task), http.StatusCreated)
}

// All обрабатывает GET /api/v1/tasks/all
func (h *TaskHandler) All(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetAll(r.Context(), owner(r))
	h.sendTasks(w, r, tasks, err)
}

// Get обрабатывает GET /api/v1/tasks/get/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(ctx, id, owner(r))
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, toAPITask(task), http.StatusOK)
}

// Edit обрабатывает PUT /api/v1/tasks/edit/{id}
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	input, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Update(ctx, id, input, owner(r))
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, toAPITask(task), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/tasks/delete/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Delete(ctx, id, owner(r)); err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, api.MessageResponse{Message: "Task deleted successfully"}, http.StatusOK)
}

// Toggle обрабатывает PUT /api/v1/tasks/toggle/{id}
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.ToggleStatus(ctx, id, owner(r))
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, toAPITask(task), http.StatusOK)
}

// ByStatus обрабатывает GET /api/v1/tasks/status/{done}
func (h *TaskHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	done, err := strconv.ParseBool(r.PathValue("done"))
	if err != nil {
		h.sendError(w, "status must be true or false", http.StatusBadRequest)
		return
	}

	tasks, err := h.tasks.FilterByStatus(r.Context(), done, owner(r))
	h.sendTasks(w, r, tasks, err)
}

// ByPriority обрабатывает GET /api/v1/tasks/priority/{priority}
func (h *TaskHandler) ByPriority(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.FilterByPriority(r.Context(), r.PathValue("priority"), owner(r))
	h.sendTasks(w, r, tasks, err)
}

// ByCategory обрабатывает GET /api/v1/tasks/category/{category}
func (h *TaskHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.FilterByCategory(r.Context(), r.PathValue("category"), owner(r))
	h.sendTasks(w, r, tasks, err)
}

// Overdue обрабатывает GET /api/v1/tasks/overdue
func (h *TaskHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.Overdue(r.Context(), owner(r))
	h.sendTasks(w, r, tasks, err)
}

// Today обрабатывает GET /api/v1/tasks/today
func (h *TaskHandler) Today(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.Today(r.Context(), owner(r))
	h.sendTasks(w, r, tasks, err)
}

// StartingSoon обрабатывает GET /api/v1/tasks/starting-soon
func (h *TaskHandler) StartingSoon(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.StartingSoon(r.Context(), owner(r))
	h.sendTasks(w, r, tasks, err)
}

// Statistics обрабатывает GET /api/v1/tasks/statistics
func (h *TaskHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.tasks.Statistics(ctx, owner(r))
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, api.TaskStatistics{
		TotalTasks:        stats.TotalTasks,
		CompletedTasks:    stats.CompletedTasks,
		PendingTasks:      stats.PendingTasks,
		HighPriorityTasks: stats.HighPriorityTasks,
		WorkTasks:         stats.WorkTasks,
		PersonalTasks:     stats.PersonalTasks,
		TodayTasks:        stats.TodayTasks,
		OverdueTasks:      stats.OverdueTasks,
	}, http.StatusOK)
}

func (h *TaskHandler) sendTasks(w http.ResponseWriter, r *http.Request, tasks []*models.Task, err error) {
	if err != nil {
		h.sendServiceError(r.Context(), w, err)
		return
	}

	resp := make([]api.Task, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, toAPITask(task))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.sendError(w, "invalid task id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) decodeTask(w http.ResponseWriter, r *http.Request) (service.TaskInput, bool) {
	var req api.TaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode task request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return service.TaskInput{}, false
	}

	return service.TaskInput{
		Description: req.Description,
		StartTime:   req.StartTime.In(h.loc),
		EndTime:     req.EndTime.In(h.loc),
		Done:        req.Done,
		Priority:    req.Priority,
		Category:    req.Category,
		Notes:       req.Notes,
	}, true
}

// owner возвращает id пользователя из контекста или "" в однопользовательском режиме
func owner(r *http.Request) string {
	userID, _ := GetUserID(r.Context())
	return userID
}

func toAPITask(task *models.Task) api.Task {
	return api.Task{
		ID:          task.ID,
		Description: task.Description,
		StartTime:   task.StartTime,
		EndTime:     task.EndTime,
		Done:        task.Done,
		Priority:    task.Priority,
		Category:    task.Category,
		Notes:       task.Notes,
	}
}
