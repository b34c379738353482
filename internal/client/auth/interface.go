package auth

import (
	"context"

	"github.com/iudanet/taskplanner/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the client-side authentication operations.
// It talks to the server and keeps the resulting session in local storage.
type Service interface {
	// Register создает аккаунт и сразу сохраняет сессию
	Register(ctx context.Context, name, email, password, confirmPassword string) (*storage.AuthData, error)

	// Login выполняет вход и сохраняет сессию
	Login(ctx context.Context, email, password string) (*storage.AuthData, error)

	// Logout удаляет локальную сессию.
	// Возвращает storage.ErrAuthNotFound, если сессии нет
	Logout(ctx context.Context) error

	// Session возвращает сохраненную сессию, в том числе истекшую.
	// Возвращает storage.ErrAuthNotFound, если сессии нет
	Session(ctx context.Context) (*storage.AuthData, error)

	// Token возвращает действующий токен или пустую строку,
	// если сессии нет или она истекла
	Token(ctx context.Context) (string, error)
}
