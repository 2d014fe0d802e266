package activity

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"moviemania/internal/recordio"
	"moviemania/internal/repository"
	"moviemania/pkg/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "UserFavorites.csv"), "favorites", zap.NewNop())
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	outcome, err := s.Add(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, model.Added, outcome)

	outcome, err = s.Add(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, model.AlreadyPresent, outcome)

	ids, err := s.ListFor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []model.MovieID{1}, ids)
}

func TestAddPreservesOrderAndOtherRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, id := range []model.MovieID{3, 1, 2} {
		_, err := s.Add(ctx, "alice", id)
		require.NoError(t, err)
	}
	_, err := s.Add(ctx, "bob", 9)
	require.NoError(t, err)

	ids, err := s.ListFor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []model.MovieID{3, 1, 2}, ids)

	ids, err = s.ListFor(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []model.MovieID{9}, ids)
}

func TestListForUnknownUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ids, err := s.ListFor(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, id := range []model.MovieID{1, 2, 3} {
		_, err := s.Add(ctx, "alice", id)
		require.NoError(t, err)
	}

	require.NoError(t, s.Remove(ctx, "alice", 2))
	ids, err := s.ListFor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []model.MovieID{1, 3}, ids)

	// Absent id is a no-op.
	require.NoError(t, s.Remove(ctx, "alice", 42))

	err = s.Remove(ctx, "nobody", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRemoveLastEntryDeletesRow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Add(ctx, "alice", 1)
	require.NoError(t, err)
	_, err = s.Add(ctx, "bob", 2)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "alice", 1))

	rows, err := recordio.ReadFile(s.path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"bob", "2"}}, rows)

	err = s.Remove(ctx, "alice", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConcurrentAddsBothSurvive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []model.MovieID{1, 2} {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Add(ctx, "alice", id)
		}()
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	ids, err := s.ListFor(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.MovieID{1, 2}, ids)
}

func TestListForSkipsMalformedEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "UserFavorites.csv")
	require.NoError(t, recordio.WriteFile(path, [][]string{
		{"alice", "1", "not-an-id", "3"},
	}))

	s := New(path, "favorites", zap.NewNop())
	ids, err := s.ListFor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []model.MovieID{1, 3}, ids)
}
