package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iudanet/taskplanner/internal/client/api"
	"github.com/iudanet/taskplanner/internal/client/auth"
	"github.com/iudanet/taskplanner/internal/client/iocli"
	pkgapi "github.com/iudanet/taskplanner/pkg/api"
)

//go:generate moq -out tasks_mock.go . TaskClient

// TaskClient методы сервера, которые использует CLI
type TaskClient interface {
	Me(ctx context.Context, token string) (*pkgapi.UserResponse, error)
	AddTask(ctx context.Context, token string, req pkgapi.TaskRequest) (*pkgapi.Task, error)
	GetTask(ctx context.Context, token string, id int64) (*pkgapi.Task, error)
	EditTask(ctx context.Context, token string, id int64, req pkgapi.TaskRequest) (*pkgapi.Task, error)
	ToggleTask(ctx context.Context, token string, id int64) (*pkgapi.Task, error)
	DeleteTask(ctx context.Context, token string, id int64) error
	ListTasks(ctx context.Context, token string, view string) ([]pkgapi.Task, error)
	Statistics(ctx context.Context, token string) (*pkgapi.TaskStatistics, error)
}

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "TASKPLANNER_PASSWORD"

var errNotAuthenticated = errors.New("not authenticated. Please run 'taskplanner login' first")

// Passwords источники пароля для login, кроме интерактивного ввода
type Passwords struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	tasks       TaskClient
	loc         *time.Location
	now         func() time.Time
	passwords   Passwords
}

func New(io iocli.IO, authService auth.Service, tasks TaskClient, passwords Passwords) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		tasks:       tasks,
		passwords:   passwords,
		loc:         time.Local,
		now:         time.Now,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "toggle":
		return c.runToggle(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "stats":
		return c.runStats(ctx)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// token возвращает токен текущей сессии. Пустой токен допустим:
// сервер в однопользовательском режиме не требует авторизации.
func (c *Cli) token(ctx context.Context) (string, error) {
	token, err := c.authService.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return token, nil
}

// requestError переводит ошибки сервера в понятные пользователю
func requestError(err error, id int64) error {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return errNotAuthenticated
	case errors.Is(err, api.ErrNotFound) && id != 0:
		return fmt.Errorf("task not found with ID: %d", id)
	default:
		return err
	}
}

// getPassword retrieves the login password with priority:
// 1. Environment variable TASKPLANNER_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Command-line parameter passwords.FromArgs
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword() (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

const usage = `TaskPlanner Client

Usage:
  taskplanner [OPTIONS] COMMAND [ARGS]

Options:
  --version              Show version information
  --server URL           Server URL (default: http://localhost:8080)
  --db PATH              Path to local session database (default: taskplanner-client.db)
  --password PASSWORD    Login password (not recommended, use env var or file)
  --password-file PATH   Path to file containing login password

Login password priority (highest to lowest):
  1. TASKPLANNER_PASSWORD environment variable
  2. --password-file (file path)
  3. --password (command line)
  4. Interactive prompt (fallback)

Commands:
  register                 Register new user
  login                    Login to server
  logout                   Delete local session
  status                   Show authentication status
  whoami                   Show the profile of the logged in user
  add                      Add new task
  list [VIEW]              List tasks. VIEW is one of:
                             all (default), done, pending,
                             priority <P>, category <C>,
                             overdue, today, soon
  get <id>                 Show task details
  edit <id>                Edit task (empty input keeps the current value)
  toggle <id>              Mark task done / not done
  delete <id> [--yes]      Delete task
  stats                    Show task statistics

Dates are entered as "2006-01-02 15:04" in the local time zone.

Examples:
  taskplanner register
  taskplanner login
  taskplanner list priority High
  taskplanner toggle 7
  taskplanner --server https://example.com stats
`

func PrintUsage(io iocli.IO) {
	io.Printf("%s", usage)
}
