package user

import (
	"context"
	"errors"
	"testing"
	"time"

	gen "moviemania/gen/mock/credential/repository"
	"moviemania/internal/repository"
	"moviemania/pkg/limiter"
	"moviemania/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testSecret() []byte {
	return []byte("test-secret")
}

func newTestController(repo credentialRepository, l *limiter.Limiter) *Controller {
	return New(repo, testSecret, time.Hour, l, zap.NewNop())
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		expRepo  bool
		repoErr  error
		wantErr  error
	}{
		{
			name:     "empty username",
			password: "secret",
			wantErr:  ErrEmptyField,
		},
		{
			name:     "empty password",
			username: "alice",
			wantErr:  ErrEmptyField,
		},
		{
			name:     "taken",
			username: "alice",
			password: "secret",
			expRepo:  true,
			repoErr:  repository.ErrUsernameTaken,
			wantErr:  ErrUsernameTaken,
		},
		{
			name:     "success",
			username: "alice",
			password: "secret",
			expRepo:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repoMock := gen.NewMockcredentialRepository(ctrl)
			c := newTestController(repoMock, nil)
			ctx := context.Background()
			if tt.expRepo {
				repoMock.EXPECT().Register(ctx, tt.username, tt.password, model.RoleUser).Return(tt.repoErr)
			}
			err := c.Register(ctx, tt.username, tt.password)
			assert.Equal(t, tt.wantErr, err, tt.name)
		})
	}
}

func TestLoginVerifyRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := gen.NewMockcredentialRepository(ctrl)
	c := newTestController(repoMock, nil)
	ctx := context.Background()

	repoMock.EXPECT().Authenticate(ctx, "alice", "secret").
		Return(&model.Credential{Username: "alice", Role: model.RoleUser}, nil)

	s, err := c.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, model.RoleUser, s.Role)
	require.NotEmpty(t, s.Token)

	verified, err := c.Verify(s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.Username, verified.Username)
	assert.Equal(t, s.Role, verified.Role)
	assert.False(t, verified.IsAdmin())
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := gen.NewMockcredentialRepository(ctrl)
	c := newTestController(repoMock, nil)
	ctx := context.Background()

	repoMock.EXPECT().Authenticate(ctx, "alice", "wrong").Return(nil, repository.ErrNotFound)
	_, err := c.Login(ctx, "alice", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLoginRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := gen.NewMockcredentialRepository(ctrl)
	c := newTestController(repoMock, nil)
	ctx := context.Background()

	wantErr := errors.New("disk gone")
	repoMock.EXPECT().Authenticate(ctx, "alice", "secret").Return(nil, wantErr)
	_, err := c.Login(ctx, "alice", "secret")
	assert.Equal(t, wantErr, err)
}

func TestLoginThrottled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := gen.NewMockcredentialRepository(ctrl)
	// Zero rate with burst 1: the first attempt passes, the second is
	// rejected before touching the repository.
	l := limiter.New(zap.NewNop(), 0, 1)
	c := newTestController(repoMock, l)
	ctx := context.Background()

	repoMock.EXPECT().Authenticate(ctx, "alice", "secret").
		Return(&model.Credential{Username: "alice", Role: model.RoleUser}, nil)
	_, err := c.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = c.Login(ctx, "alice", "secret")
	assert.Equal(t, ErrTooManyAttempts, err)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := gen.NewMockcredentialRepository(ctrl)
	c := newTestController(repoMock, nil)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "not-a-token",
		},
		{
			name:  "empty",
			token: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Verify(tt.token)
			assert.Equal(t, ErrInvalidToken, err)
		})
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := gen.NewMockcredentialRepository(ctrl)
	ctx := context.Background()

	other := New(repoMock, func() []byte { return []byte("other-secret") }, time.Hour, nil, zap.NewNop())
	repoMock.EXPECT().Authenticate(ctx, "alice", "secret").
		Return(&model.Credential{Username: "alice", Role: model.RoleUser}, nil)
	s, err := other.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	c := newTestController(repoMock, nil)
	_, err = c.Verify(s.Token)
	assert.Equal(t, ErrInvalidToken, err)
}
