package credential

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"moviemania/internal/recordio"
	"moviemania/internal/repository"
	"moviemania/pkg/model"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "UserPass.csv"), bcrypt.MinCost, zap.NewNop())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	require.NoError(t, r.Register(ctx, "alice", "secret", model.RoleUser))

	c, err := r.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, model.RoleUser, c.Role)

	_, err = r.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = r.Authenticate(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPasswordsAreHashed(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	require.NoError(t, r.Register(ctx, "alice", "secret", model.RoleUser))

	rows, err := recordio.ReadFile(r.path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "alice", rows[1][0])
	assert.NotEqual(t, "secret", rows[1][1])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rows[1][1]), []byte("secret")))
}

func TestRegisterTaken(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	require.NoError(t, r.Register(ctx, "alice", "secret", model.RoleUser))

	err := r.Register(ctx, "alice", "other", model.RoleUser)
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	require.NoError(t, r.Register(ctx, "alice", "secret", model.RoleUser))

	taken, err := r.IsUsernameTaken(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = r.IsUsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestRegisterAppendsWithoutRewriting(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	require.NoError(t, r.Register(ctx, "alice", "s1", model.RoleUser))

	rows, err := recordio.ReadFile(r.path)
	require.NoError(t, err)
	aliceRow := rows[1]

	require.NoError(t, r.Register(ctx, "bob", "s2", model.RoleUser))
	rows, err = recordio.ReadFile(r.path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, aliceRow, rows[1])
	assert.Equal(t, "bob", rows[2][0])
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	require.NoError(t, r.Seed(ctx, "admin", "admin123", model.RoleAdmin))
	require.NoError(t, r.Seed(ctx, "admin", "changed", model.RoleAdmin))

	c, err := r.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, c.Role)
}

func TestLegacyTwoFieldRow(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "UserPass.csv")
	hash, err := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, recordio.WriteFile(path, [][]string{
		{"Username", "Password"},
		{"carol", string(hash)},
	}))

	r := New(path, bcrypt.MinCost, zap.NewNop())
	c, err := r.Authenticate(ctx, "carol", "old")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, c.Role)
}
