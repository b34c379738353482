package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/taskplanner/pkg/api"
)

const apiPrefix = "/api/v1"

// ErrUnauthorized возвращается, если сервер ответил 401
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound возвращается, если сервер ответил 404
var ErrNotFound = errors.New("not found")

// Error описывает неуспешный ответ сервера
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет сравнивать ошибку через errors.Is с ErrUnauthorized и ErrNotFound
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает профиль владельца токена
func (c *Client) Me(ctx context.Context, token string) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// ValidateToken спрашивает у сервера, действителен ли токен
func (c *Client) ValidateToken(ctx context.Context, token string) (bool, error) {
	var valid bool
	err := c.doRequest(ctx, http.MethodPost, "/auth/validate", token, nil, &valid)
	if err != nil {
		var apiErr *Error
		// 400 означает отсутствие префикса Bearer, т.е. токена нет
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return false, nil
		}
		return false, fmt.Errorf("validate request failed: %w", err)
	}
	return valid, nil
}

// AddTask создает задачу
func (c *Client) AddTask(ctx context.Context, token string, req api.TaskRequest) (*api.Task, error) {
	var task api.Task
	if err := c.doRequest(ctx, http.MethodPost, "/tasks/add", token, req, &task); err != nil {
		return nil, fmt.Errorf("add task request failed: %w", err)
	}
	return &task, nil
}

// GetTask возвращает задачу по ID
func (c *Client) GetTask(ctx context.Context, token string, id int64) (*api.Task, error) {
	var task api.Task
	if err := c.doRequest(ctx, http.MethodGet, "/tasks/get/"+formatID(id), token, nil, &task); err != nil {
		return nil, fmt.Errorf("get task request failed: %w", err)
	}
	return &task, nil
}

// EditTask заменяет поля задачи
func (c *Client) EditTask(ctx context.Context, token string, id int64, req api.TaskRequest) (*api.Task, error) {
	var task api.Task
	if err := c.doRequest(ctx, http.MethodPut, "/tasks/edit/"+formatID(id), token, req, &task); err != nil {
		return nil, fmt.Errorf("edit task request failed: %w", err)
	}
	return &task, nil
}

// ToggleTask инвертирует статус выполнения задачи
func (c *Client) ToggleTask(ctx context.Context, token string, id int64) (*api.Task, error) {
	var task api.Task
	if err := c.doRequest(ctx, http.MethodPut, "/tasks/toggle/"+formatID(id), token, nil, &task); err != nil {
		return nil, fmt.Errorf("toggle task request failed: %w", err)
	}
	return &task, nil
}

// DeleteTask удаляет задачу
func (c *Client) DeleteTask(ctx context.Context, token string, id int64) error {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/tasks/delete/"+formatID(id), token, nil, &resp); err != nil {
		return fmt.Errorf("delete task request failed: %w", err)
	}
	return nil
}

// ListTasks возвращает список задач. view - путь выборки относительно /tasks,
// например "all", "overdue" или "priority/High" (см. ListView).
func (c *Client) ListTasks(ctx context.Context, token string, view string) ([]api.Task, error) {
	var tasks []api.Task
	if err := c.doRequest(ctx, http.MethodGet, "/tasks/"+view, token, nil, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks request failed: %w", err)
	}
	return tasks, nil
}

// Statistics возвращает счетчики задач
func (c *Client) Statistics(ctx context.Context, token string) (*api.TaskStatistics, error) {
	var stats api.TaskStatistics
	if err := c.doRequest(ctx, http.MethodGet, "/tasks/statistics", token, nil, &stats); err != nil {
		return nil, fmt.Errorf("statistics request failed: %w", err)
	}
	return &stats, nil
}

// Выборки задач для ListTasks
const (
	ViewAll          = "all"
	ViewOverdue      = "overdue"
	ViewToday        = "today"
	ViewStartingSoon = "starting-soon"
)

// ViewStatus выборка по статусу выполнения
func ViewStatus(done bool) string {
	return "status/" + strconv.FormatBool(done)
}

// ViewPriority выборка по приоритету
func ViewPriority(priority string) string {
	return "priority/" + url.PathEscape(priority)
}

// ViewCategory выборка по категории
func ViewCategory(category string) string {
	return "category/" + url.PathEscape(category)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// doRequest выполняет HTTP запрос. Пустой token означает запрос без авторизации.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
