package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskplanner/internal/models"
	"github.com/iudanet/taskplanner/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	// Verify user was created
	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Name, retrieved.Name)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.WithinDuration(t, user.CreatedAt, retrieved.CreatedAt, time.Millisecond)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Create first user
	user1 := &models.User{
		ID:           uuid.New().String(),
		Name:         "First",
		Email:        "duplicate@example.com",
		PasswordHash: "hash1",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user1))

	// Try to create second user with same email
	user2 := &models.User{
		ID:           uuid.New().String(),
		Name:         "Second",
		Email:        "duplicate@example.com", // Same email
		PasswordHash: "hash2",
		CreatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         "Find Me",
		Email:        "findme@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantError error
		get       func() (*models.User, error)
		name      string
	}{
		{
			name: "by existing email",
			get:  func() (*models.User, error) { return s.GetUserByEmail(ctx, "findme@example.com") },
		},
		{
			name:      "by non-existent email",
			get:       func() (*models.User, error) { return s.GetUserByEmail(ctx, "notfound@example.com") },
			wantError: storage.ErrUserNotFound,
		},
		{
			name:      "email lookup is exact",
			get:       func() (*models.User, error) { return s.GetUserByEmail(ctx, "FINDME@example.com") },
			wantError: storage.ErrUserNotFound,
		},
		{
			name: "by existing id",
			get:  func() (*models.User, error) { return s.GetUserByID(ctx, user.ID) },
		},
		{
			name:      "by non-existent id",
			get:       func() (*models.User, error) { return s.GetUserByID(ctx, "nonexistent-id") },
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := tt.get()
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, retrieved.ID)
				assert.Equal(t, user.Email, retrieved.Email)
			}
		})
	}
}

func TestUserStorage_UserExists(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	exists, err := s.UserExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.CreateUser(ctx, &models.User{
		ID:           uuid.New().String(),
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}))

	exists, err = s.UserExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
