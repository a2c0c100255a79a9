package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitta-app/habitta/internal/storage"
)

// =============================================================================
// Test Helpers
// =============================================================================

// setupTestDB creates a new in-memory database for testing.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		err := db.Close()
		assert.NoError(t, err, "failed to close database")
	})
	return db
}

// setupStore creates a store over a fresh in-memory database.
func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(setupTestDB(t))
}

// =============================================================================
// Database Connection Tests
// =============================================================================

func TestDB_Open_InMemory(t *testing.T) {
	t.Run("opens with InMemory flag", func(t *testing.T) {
		db, err := storage.Open(storage.Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		require.NoError(t, db.Close())
	})

	t.Run("opens with empty Path (defaults to in-memory)", func(t *testing.T) {
		db, err := storage.Open(storage.Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.Equal(t, "", db.Path())
		require.NoError(t, db.Close())
	})
}

func TestDB_DefaultPath(t *testing.T) {
	path := storage.DefaultPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "habitta")
}

// =============================================================================
// Store Get/Set Tests
// =============================================================================

func TestStore_SetAndGet(t *testing.T) {
	store := setupStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("k", payload{Name: "x", Count: 3}))

	var got payload
	ok := store.Get("k", &got)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestStore_GetMissingKeyKeepsDefault(t *testing.T) {
	store := setupStore(t)

	value := "fallback"
	ok := store.Get("missing", &value)
	assert.False(t, ok)
	assert.Equal(t, "fallback", value, "caller default must survive a miss")
}

func TestStore_GetMalformedValueKeepsDefault(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.SetBytes("bad", []byte("{not json")))

	value := 42
	ok := store.Get("bad", &value)
	assert.False(t, ok, "malformed bytes must not error past the boundary")
	assert.Equal(t, 42, value)
}

func TestStore_Delete(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Delete("k"))

	exists, err := store.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete("k"), "deleting a missing key is a no-op")
}

func TestStore_Reset(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Set("a", 1))
	require.NoError(t, store.Set("b", 2))
	require.NoError(t, store.Set("keep", 3))

	require.NoError(t, store.Reset("a", "b"))

	var v int
	assert.False(t, store.Get("a", &v))
	assert.False(t, store.Get("b", &v))
	assert.True(t, store.Get("keep", &v))
}

// =============================================================================
// Subscription Tests
// =============================================================================

func TestStore_SubscribersNotifiedOnSet(t *testing.T) {
	store := setupStore(t)

	var changed []string
	store.Subscribe(func(key string) {
		changed = append(changed, key)
	})

	require.NoError(t, store.Set("habits", []string{}))
	require.NoError(t, store.Set("todos", []string{}))
	require.NoError(t, store.Delete("habits"))

	assert.Equal(t, []string{"habits", "todos", "habits"}, changed)
}

func TestStore_GetBytesRoundTrip(t *testing.T) {
	store := setupStore(t)
	blob := []byte(`{"raw":true}`)
	require.NoError(t, store.SetBytes("blob", blob))

	got, err := store.GetBytes("blob")
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	_, err = store.GetBytes("absent")
	assert.True(t, storage.IsErrKeyNotFound(err))
}
