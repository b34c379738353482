package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskplanner/internal/client/storage"
	"github.com/iudanet/taskplanner/internal/validation"
	pkgapi "github.com/iudanet/taskplanner/pkg/api"
)

// APIClient методы сервера, нужные для аутентификации
type APIClient interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
}

// service реализует Service
type service struct {
	apiClient APIClient
	authStore storage.AuthStorage
	now       func() time.Time
	server    string
}

// NewService создает новый сервис авторизации.
// server сохраняется в сессии, чтобы status показывал, куда выполнен вход.
func NewService(apiClient APIClient, authStore storage.AuthStorage, server string) Service {
	return &service{
		apiClient: apiClient,
		authStore: authStore,
		server:    server,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя.
// Данные проверяются локально в том же порядке, что и на сервере.
func (s *service) Register(ctx context.Context, name, email, password, confirmPassword string) (*storage.AuthData, error) {
	if err := validation.ValidatePasswordConfirmation(password, confirmPassword); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Login выполняет аутентификацию пользователя
func (s *service) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Logout удаляет локальные данные авторизации.
// На сервере сессий нет, JWT просто перестает использоваться.
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.authStore.GetAuth(ctx)
}

// Token возвращает действующий токен
func (s *service) Token(ctx context.Context) (string, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}

	if authData.Expired(s.now()) {
		return "", nil
	}

	return authData.Token, nil
}

func (s *service) saveSession(ctx context.Context, resp *pkgapi.AuthResponse) (*storage.AuthData, error) {
	authData := &storage.AuthData{
		Token:     resp.Token,
		UserID:    resp.UserID,
		Name:      resp.Name,
		Email:     resp.Email,
		Server:    s.server,
		ExpiresAt: resp.ExpiresAt.Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	return authData, nil
}
