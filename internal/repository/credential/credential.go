// Package credential implements the file-backed login credential store.
//
// Unlike the catalog, registration is append-only: a new row is appended to
// the backing file (header first when the file is new), existing rows are
// never rewritten. Passwords are stored as bcrypt hashes.
package credential

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"moviemania/internal/recordio"
	"moviemania/internal/repository"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

// Header is the first row of the credentials file.
var Header = []string{"Username", "Password", "Role"}

// Repository defines a file-backed credential repository.
type Repository struct {
	mu     sync.Mutex
	path   string
	cost   int
	logger *zap.Logger
}

// New creates a credential repository backed by the file at path. cost is
// the bcrypt work factor; values below bcrypt.MinCost fall back to
// bcrypt.DefaultCost.
func New(path string, cost int, logger *zap.Logger) *Repository {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "credential-file"),
	)
	return &Repository{path: path, cost: cost, logger: logger}
}

// readAll parses every credential row, skipping the header and logging
// malformed rows. Callers hold the mutex.
func (r *Repository) readAll() ([]model.Credential, error) {
	rows, err := recordio.ReadFile(r.path)
	if err != nil {
		if recordio.Missing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials from %s: %w", r.path, err)
	}
	creds := make([]model.Credential, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		c, err := model.CredentialFromRow(i+1, row)
		if err != nil {
			r.logger.Warn("Skipping malformed credential row",
				zap.String(logging.FieldFile, r.path),
				zap.Int(logging.FieldLine, i+1),
				zap.Error(err),
			)
			continue
		}
		creds = append(creds, *c)
	}
	return creds, nil
}

func (r *Repository) find(username string) (*model.Credential, error) {
	creds, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range creds {
		if creds[i].Username == username {
			return &creds[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Authenticate verifies the password against the stored hash and returns
// the matching credential. An unknown username and a wrong password both
// yield repository.ErrNotFound so callers cannot probe for usernames.
func (r *Repository) Authenticate(ctx context.Context, username, password string) (*model.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, err := r.find(username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

// IsUsernameTaken reports whether a credential exists for the exact,
// case-sensitive username.
func (r *Repository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.find(username)
	if err == repository.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Register hashes the password and appends a credential row for the
// username. Returns repository.ErrUsernameTaken when the username exists.
func (r *Repository) Register(ctx context.Context, username, password string, role model.Role) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.find(username); err == nil {
		return repository.ErrUsernameTaken
	} else if err != repository.ErrNotFound {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	c := &model.Credential{Username: username, PasswordHash: string(hash), Role: role}
	if err := recordio.AppendRow(r.path, Header, model.CredentialToRow(c)); err != nil {
		return fmt.Errorf("failed to append credential: %w", err)
	}
	r.logger.Info("Registered credential",
		zap.String(logging.FieldUsername, username),
		zap.String("role", string(role)),
	)
	return nil
}

// Seed registers the credential unless the username already exists. Used to
// bootstrap the administrator account on startup instead of the original
// design's hard-coded admin check.
func (r *Repository) Seed(ctx context.Context, username, password string, role model.Role) error {
	err := r.Register(ctx, username, password, role)
	if err == repository.ErrUsernameTaken {
		return nil
	}
	return err
}
