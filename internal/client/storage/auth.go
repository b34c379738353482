package storage

import (
	"context"
	"time"
)

// AuthStorage defines interface for storing the client session locally
type AuthStorage interface {
	// SaveAuth stores the session, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout).
	// Returns ErrAuthNotFound if no session exists
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a session exists and its token is not expired
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData сессия пользователя: JWT токен и данные профиля
type AuthData struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Server    string `json:"server"`     // URL сервера, выдавшего токен
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

// Expired сообщает, истек ли токен к моменту now
func (a *AuthData) Expired(now time.Time) bool {
	return !now.Before(time.Unix(a.ExpiresAt, 0))
}
