package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/taskplanner/internal/crypto"
	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/jwt"
	"github.com/iudanet/taskplanner/internal/server/storage"
	"github.com/iudanet/taskplanner/internal/validation"
)

// AuthResult is returned by Register and Login
type AuthResult struct {
	ExpiresAt time.Time
	Token     string
	UserID    string
	Name      string
	Email     string
}

// AuthService регистрирует пользователей, выдает и проверяет токены
type AuthService struct {
	logger *slog.Logger
	users  storage.UserStorage
	hasher *crypto.Hasher
	tokens *jwt.Service
	now    func() time.Time
}

// NewAuthService создает сервис авторизации
func NewAuthService(logger *slog.Logger, users storage.UserStorage, hasher *crypto.Hasher, tokens *jwt.Service) *AuthService {
	return &AuthService{
		logger: logger,
		users:  users,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

// Register creates a new account and returns a token for it.
// All field checks run before the store is touched.
func (s *AuthService) Register(ctx context.Context, name, email, password, confirmPassword string) (*AuthResult, error) {
	if err := validation.ValidatePasswordConfirmation(password, confirmPassword); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	email = validation.NormalizeEmail(email)

	exists, err := s.users.UserExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Гонка двух регистраций ловится уникальным индексом
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))

	return s.issue(user)
}

// Login checks the credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = validation.NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user with email %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.hasher.VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return nil, fmt.Errorf("%w: invalid password", ErrUnauthorized)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return s.issue(user)
}

// ValidateToken reports whether the token is signed with the server secret
// and not expired. Never panics on malformed input.
func (s *AuthService) ValidateToken(token string) bool {
	return s.tokens.Valid(token)
}

// ParseToken returns the claims of a valid token
func (s *AuthService) ParseToken(token string) (*jwt.Claims, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return claims, nil
}

// CurrentUser returns the user identified by the token subject
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
	}, nil
}
