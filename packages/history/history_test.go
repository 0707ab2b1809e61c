package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), ".reqq", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewEntry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e := NewEntry("users/get", "dev", "GET /users/1", nil, 3*time.Millisecond)

		assert.Equal(t, StatusOK, e.Status)
		assert.Equal(t, 12, e.Bytes)
		assert.Len(t, e.Digest, 64)
		assert.Empty(t, e.Error)
	})

	t.Run("failure", func(t *testing.T) {
		e := NewEntry("users/get", "dev", "", errors.New("key not found"), time.Millisecond)

		assert.Equal(t, StatusError, e.Status)
		assert.Equal(t, "key not found", e.Error)
		assert.Empty(t, e.Digest)
	})
}

func TestRecordAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first, err := store.Record(ctx, NewEntry("users/get", "dev", "GET /users/1", nil, 1500*time.Microsecond))
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)

	_, err = store.Record(ctx, NewEntry("users/get", "prod", "", errors.New("boom"), time.Millisecond))
	require.NoError(t, err)
	_, err = store.Record(ctx, NewEntry("health", "", "GET /health", nil, time.Millisecond))
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		entries, err := store.List(ctx, Filter{})
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "health", entries[0].Request)
		assert.Equal(t, "users/get", entries[2].Request)
		assert.Equal(t, first.ID, entries[2].ID)
		assert.Equal(t, 1500*time.Microsecond, entries[2].Duration)
		assert.True(t, entries[2].CreatedAt.Equal(base.Add(time.Second)))
	})

	t.Run("filters", func(t *testing.T) {
		entries, err := store.List(ctx, Filter{Request: "users/get", Environment: "prod"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, StatusError, entries[0].Status)
		assert.Equal(t, "boom", entries[0].Error)
	})

	t.Run("limit", func(t *testing.T) {
		entries, err := store.List(ctx, Filter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("clear", func(t *testing.T) {
		n, err := store.Clear(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		entries, err := store.List(ctx, Filter{})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestOpenTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := Open(path)
	require.NoError(t, err)
	_, err = s1.Record(context.Background(), NewEntry("a", "", "x", nil, 0))
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
