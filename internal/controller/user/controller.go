// Package user implements registration, authentication and session tokens.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"moviemania/internal/repository"
	"moviemania/pkg/limiter"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

// ErrInvalidCredentials is returned when the username/password pair does
// not match a stored credential.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrEmptyField is returned when a required registration field is blank.
var ErrEmptyField = errors.New("username and password must not be empty")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// ErrTooManyAttempts is returned when login attempts exceed the rate limit.
var ErrTooManyAttempts = errors.New("too many login attempts")

// ErrInvalidToken is returned when a session token fails verification.
var ErrInvalidToken = errors.New("invalid session token")

// SecretProvider defines a provider of the session token signing secret.
type SecretProvider func() []byte

type credentialRepository interface {
	Authenticate(ctx context.Context, username, password string) (*model.Credential, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, username, password string, role model.Role) error
}

// Controller defines a user controller. Login yields an explicit Session
// that the presentation layer carries into activity calls; nothing here
// keeps a process-wide current user.
type Controller struct {
	repo           credentialRepository
	secretProvider SecretProvider
	ttl            time.Duration
	limiter        *limiter.Limiter
	logger         *zap.Logger
}

// New creates a user controller. l throttles login attempts and may be nil
// to disable throttling.
func New(repo credentialRepository, secretProvider SecretProvider, ttl time.Duration, l *limiter.Limiter, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "user"),
	)
	return &Controller{
		repo:           repo,
		secretProvider: secretProvider,
		ttl:            ttl,
		limiter:        l,
		logger:         logger,
	}
}

// Register creates a credential with the user role. Admin accounts are
// seeded from configuration, not registered through this path.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyField
	}
	if err := c.repo.Register(ctx, username, password, model.RoleUser); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// IsUsernameTaken reports whether the username is already registered.
func (c *Controller) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	return c.repo.IsUsernameTaken(ctx, username)
}

// Login verifies the credentials and returns a session carrying a signed
// token.
func (c *Controller) Login(ctx context.Context, username, password string) (*model.Session, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return nil, ErrTooManyAttempts
	}
	cred, err := c.repo.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": cred.Username,
		"role":     string(cred.Role),
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(c.ttl).Unix(),
	})
	tokenString, err := token.SignedString(c.secretProvider())
	if err != nil {
		c.logger.Error("Failed to sign session token", zap.Error(err))
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	c.logger.Info("User logged in", zap.String(logging.FieldUsername, cred.Username))
	return &model.Session{Username: cred.Username, Role: cred.Role, Token: tokenString}, nil
}

// Verify re-derives the session from a token issued by Login.
func (c *Controller) Verify(tokenString string) (*model.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secretProvider(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	s := &model.Session{Token: tokenString}
	if v, ok := claims["username"].(string); ok {
		s.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = model.Role(v)
	}
	if s.Username == "" || !s.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return s, nil
}
