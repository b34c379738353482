package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskplanner/internal/client/storage"
	"github.com/iudanet/taskplanner/internal/client/storage/boltdb"
	pkgapi "github.com/iudanet/taskplanner/pkg/api"
)

var testNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeAPIClient implements APIClient for testing
type fakeAPIClient struct {
	err         error
	registerReq *pkgapi.RegisterRequest
	loginReq    *pkgapi.LoginRequest
}

func (f *fakeAPIClient) response(email string) *pkgapi.AuthResponse {
	return &pkgapi.AuthResponse{
		Token:     "jwt-" + email,
		UserID:    "user-1",
		Name:      "Alice",
		Email:     email,
		ExpiresAt: testNow.Add(24 * time.Hour),
	}
}

func (f *fakeAPIClient) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error) {
	f.registerReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.response(req.Email), nil
}

func (f *fakeAPIClient) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error) {
	f.loginReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.response(req.Email), nil
}

// failingAuthStorage implements storage.AuthStorage and fails every call
type failingAuthStorage struct{ err error }

func (f failingAuthStorage) SaveAuth(context.Context, *storage.AuthData) error { return f.err }
func (f failingAuthStorage) GetAuth(context.Context) (*storage.AuthData, error) {
	return nil, f.err
}
func (f failingAuthStorage) DeleteAuth(context.Context) error { return f.err }
func (f failingAuthStorage) IsAuthenticated(context.Context) (bool, error) {
	return false, f.err
}

func newTestService(t *testing.T, apiClient APIClient) (*service, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := NewService(apiClient, store, "http://localhost:8080").(*service)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	apiClient := &fakeAPIClient{}
	svc, store := newTestService(t, apiClient)

	authData, err := svc.Register(ctx, "Alice", "alice@example.com", "secret1", "secret1")
	require.NoError(t, err)

	require.NotNil(t, apiClient.registerReq)
	assert.Equal(t, "secret1", apiClient.registerReq.ConfirmPassword)

	assert.Equal(t, "jwt-alice@example.com", authData.Token)
	assert.Equal(t, "http://localhost:8080", authData.Server)
	assert.Equal(t, testNow.Add(24*time.Hour).Unix(), authData.ExpiresAt)

	saved, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, authData, saved)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name            string
		userName        string
		email           string
		password        string
		confirmPassword string
		wantErr         string
	}{
		{"mismatch reported first", "", "", "secret1", "other", "passwords do not match"},
		{"empty name", " ", "alice@example.com", "secret1", "secret1", "name is required"},
		{"empty email", "Alice", "", "secret1", "secret1", "email is required"},
		{"short password", "Alice", "alice@example.com", "12345", "12345", "password must be at least"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiClient := &fakeAPIClient{}
			svc, _ := newTestService(t, apiClient)

			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password, tt.confirmPassword)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, apiClient.registerReq, "invalid input must not reach the server")
		})
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	apiClient := &fakeAPIClient{}
	svc, store := newTestService(t, apiClient)

	authData, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-alice@example.com", authData.Token)
	assert.Equal(t, "alice@example.com", apiClient.loginReq.Email)

	saved, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.UserID)
}

func TestService_Login_Errors(t *testing.T) {
	serverErr := errors.New("server error (401): invalid password")

	t.Run("empty password", func(t *testing.T) {
		apiClient := &fakeAPIClient{}
		svc, _ := newTestService(t, apiClient)

		_, err := svc.Login(context.Background(), "alice@example.com", "")
		require.Error(t, err)
		assert.Nil(t, apiClient.loginReq)
	})

	t.Run("server rejects", func(t *testing.T) {
		svc, store := newTestService(t, &fakeAPIClient{err: serverErr})

		_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
		require.ErrorIs(t, err, serverErr)

		_, err = store.GetAuth(context.Background())
		assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	})

	t.Run("session not saved", func(t *testing.T) {
		storeErr := errors.New("disk full")
		svc := NewService(&fakeAPIClient{}, failingAuthStorage{err: storeErr}, "")

		_, err := svc.Login(context.Background(), "alice@example.com", "secret1")
		require.ErrorIs(t, err, storeErr)
	})
}

func TestService_Token(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &fakeAPIClient{})

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Token: "valid", ExpiresAt: testNow.Add(time.Minute).Unix()}))
	token, err = svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "valid", token)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Token: "stale", ExpiresAt: testNow.Add(-time.Minute).Unix()}))
	token, err = svc.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Session отдает и истекшую сессию
	session, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stale", session.Token)
}

func TestService_Token_StorageError(t *testing.T) {
	storeErr := errors.New("db locked")
	svc := NewService(&fakeAPIClient{}, failingAuthStorage{err: storeErr}, "")

	_, err := svc.Token(context.Background())
	assert.ErrorIs(t, err, storeErr)
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeAPIClient{})

	assert.ErrorIs(t, svc.Logout(ctx), storage.ErrAuthNotFound)

	_, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Session(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}
