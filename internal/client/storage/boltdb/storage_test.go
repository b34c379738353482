package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketAuth) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing-dir", "testdb.db")

	store, err := New(context.Background(), dbPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Повторный Close ничего не делает
	assert.NoError(t, store.Close())
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())

	// Повторная инициализация не ошибка
	require.NoError(t, store.initBuckets())

	err = db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketAuth) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	assert.NoError(t, err)
}
