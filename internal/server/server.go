// Package server wires the HTTP API: storage, services, handlers and middleware.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/taskplanner/internal/crypto"
	"github.com/iudanet/taskplanner/internal/server/config"
	"github.com/iudanet/taskplanner/internal/server/handlers"
	"github.com/iudanet/taskplanner/internal/server/jwt"
	"github.com/iudanet/taskplanner/internal/server/middleware"
	"github.com/iudanet/taskplanner/internal/server/service"
	"github.com/iudanet/taskplanner/internal/server/storage"
	"github.com/iudanet/taskplanner/internal/server/storage/postgres"
	"github.com/iudanet/taskplanner/internal/server/storage/sqlite"
)

const (
	apiPrefix  = "/api/v1"
	healthPath = apiPrefix + "/health"
)

// Store объединяет хранилища пользователей и задач одной БД
type Store interface {
	storage.UserStorage
	storage.TaskStorage
	Ping(ctx context.Context) error
	Close() error
}

// OpenStore открывает хранилище, выбранное в конфигурации, и применяет миграции
func OpenStore(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		var s *sqlite.Storage
		s, err = sqlite.New(ctx, cfg.DatabaseDSN)
		store = s
	case config.DriverPostgres:
		var s *postgres.Storage
		s, err = postgres.New(ctx, cfg.DatabaseDSN)
		store = s
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.DatabaseDriver, err)
	}

	return store, nil
}

// Server HTTP сервер планировщика задач
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	limiter    *middleware.PathRateLimiter
	handler    http.Handler
	cfg        *config.Config
}

// New собирает сервисы, handlers и цепочку middleware поверх store
func New(cfg *config.Config, logger *slog.Logger, store Store, version string) *Server {
	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(logger, store, crypto.NewHasher(crypto.PasswordCost), tokens)
	taskService := service.NewTaskService(logger, store, cfg.Location)

	authHandler := handlers.NewAuthHandler(logger, authService)
	taskHandler := handlers.NewTaskHandler(logger, taskService, cfg.Location)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	requireAuth := middleware.AuthMiddleware(logger, authService)

	// В однопользовательском режиме задачи доступны без токена и без фильтра по владельцу
	taskAuth := requireAuth
	if cfg.SingleUser {
		taskAuth = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET "+healthPath, healthHandler.Health)

	mux.HandleFunc("POST "+apiPrefix+"/auth/register", authHandler.Register)
	mux.HandleFunc("POST "+apiPrefix+"/auth/login", authHandler.Login)
	mux.HandleFunc("POST "+apiPrefix+"/auth/validate", authHandler.Validate)
	mux.Handle("GET "+apiPrefix+"/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	tasks := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, taskAuth(h))
	}
	tasks("POST "+apiPrefix+"/tasks/add", taskHandler.Add)
	tasks("GET "+apiPrefix+"/tasks/all", taskHandler.All)
	tasks("GET "+apiPrefix+"/tasks/get/{id}", taskHandler.Get)
	tasks("PUT "+apiPrefix+"/tasks/edit/{id}", taskHandler.Edit)
	tasks("DELETE "+apiPrefix+"/tasks/delete/{id}", taskHandler.Delete)
	tasks("PUT "+apiPrefix+"/tasks/toggle/{id}", taskHandler.Toggle)
	tasks("GET "+apiPrefix+"/tasks/status/{done}", taskHandler.ByStatus)
	tasks("GET "+apiPrefix+"/tasks/priority/{priority}", taskHandler.ByPriority)
	tasks("GET "+apiPrefix+"/tasks/category/{category}", taskHandler.ByCategory)
	tasks("GET "+apiPrefix+"/tasks/overdue", taskHandler.Overdue)
	tasks("GET "+apiPrefix+"/tasks/today", taskHandler.Today)
	tasks("GET "+apiPrefix+"/tasks/starting-soon", taskHandler.StartingSoon)
	tasks("GET "+apiPrefix+"/tasks/statistics", taskHandler.Statistics)

	// Более строгий лимит для входа и регистрации (перебор паролей)
	limiter := middleware.NewPathRateLimiter([]middleware.PathRateLimit{
		{Path: apiPrefix + "/auth/login", Rate: cfg.AuthRateLimit, Window: cfg.RateLimitWindow},
		{Path: apiPrefix + "/auth/register", Rate: cfg.AuthRateLimit, Window: cfg.RateLimitWindow},
	}, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)

	// Порядок выполнения: recovery -> request id -> logging -> CORS -> rate limit -> mux
	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = middleware.CORSMiddleware(handler)
	handler = middleware.LoggingWithSkip(logger, []string{healthPath})(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
		handler: handler,
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}
}

// Handler возвращает корневой http.Handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает адрес из конфигурации до отмены ctx, затем корректно завершает работу
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "server listening",
			slog.String("addr", s.cfg.Address),
			slog.String("db_driver", s.cfg.DatabaseDriver),
			slog.Bool("single_user", s.cfg.SingleUser))

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
