// Package activity implements the file-backed per-user activity store used
// for both favorites and watch history.
//
// Each row is variable-width: the first field is the username, the rest are
// movie ids in insertion order. Every mutation reads the whole file,
// changes one row and atomically rewrites the file; the mutex makes the
// read-modify-rewrite a single critical section, so concurrent mutations
// cannot lose each other's updates.
package activity

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"moviemania/internal/recordio"
	"moviemania/internal/repository"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

// Store defines a file-backed activity store. Favorites and watch history
// are two independent instances over different files.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// New creates an activity store backed by the file at path. kind names the
// instance (favorites, watch-history) in log output.
func New(path, kind string, logger *zap.Logger) *Store {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "activity-file"),
		zap.String("kind", kind),
	)
	return &Store{path: path, logger: logger}
}

// readRows loads all rows, treating a missing file as empty. Callers hold
// the mutex.
func (s *Store) readRows() ([][]string, error) {
	rows, err := recordio.ReadFile(s.path)
	if err != nil {
		if recordio.Missing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read activity from %s: %w", s.path, err)
	}
	return rows, nil
}

func findRow(rows [][]string, username string) int {
	for i, row := range rows {
		if len(row) > 0 && row[0] == username {
			return i
		}
	}
	return -1
}

// Add records a movie id for the username. A first add creates the user's
// row; an id already present leaves the row untouched and reports
// AlreadyPresent.
func (s *Store) Add(ctx context.Context, username string, id model.MovieID) (model.AddOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readRows()
	if err != nil {
		return "", err
	}
	field := recordio.FormatUint(uint64(id))
	i := findRow(rows, username)
	if i < 0 {
		rows = append(rows, []string{username, field})
	} else {
		for _, v := range rows[i][1:] {
			if v == field {
				return model.AlreadyPresent, nil
			}
		}
		rows[i] = append(rows[i], field)
	}
	if err := recordio.WriteFile(s.path, rows); err != nil {
		return "", fmt.Errorf("failed to rewrite activity file: %w", err)
	}
	s.logger.Debug("Recorded activity entry",
		zap.String(logging.FieldUsername, username),
		zap.Uint64(logging.FieldMovieID, uint64(id)),
	)
	return model.Added, nil
}

// Remove deletes a movie id from the username's row. Removing an id that is
// not present is a no-op. A row left empty is deleted entirely, so a row
// exists exactly when the user has at least one entry. Returns
// repository.ErrNotFound when the user has no row at all.
func (s *Store) Remove(ctx context.Context, username string, id model.MovieID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readRows()
	if err != nil {
		return err
	}
	i := findRow(rows, username)
	if i < 0 {
		return repository.ErrNotFound
	}
	field := recordio.FormatUint(uint64(id))
	row := rows[i]
	changed := false
	kept := row[:1]
	for _, v := range row[1:] {
		if v == field {
			changed = true
			continue
		}
		kept = append(kept, v)
	}
	if !changed {
		return nil
	}
	if len(kept) == 1 {
		rows = append(rows[:i], rows[i+1:]...)
	} else {
		rows[i] = kept
	}
	if err := recordio.WriteFile(s.path, rows); err != nil {
		return fmt.Errorf("failed to rewrite activity file: %w", err)
	}
	return nil
}

// ListFor returns the username's movie ids in insertion order, empty when
// the user has no row. Fields that fail to parse as ids are logged and
// skipped.
func (s *Store) ListFor(ctx context.Context, username string) ([]model.MovieID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readRows()
	if err != nil {
		return nil, err
	}
	i := findRow(rows, username)
	if i < 0 {
		return nil, nil
	}
	ids := make([]model.MovieID, 0, len(rows[i])-1)
	for j := 1; j < len(rows[i]); j++ {
		d := recordio.NewRowDecoder(i+1, rows[i])
		id := d.Uint(j)
		if err := d.Err(); err != nil {
			s.logger.Warn("Skipping malformed activity entry",
				zap.String(logging.FieldUsername, username),
				zap.Error(err),
			)
			continue
		}
		ids = append(ids, model.MovieID(id))
	}
	return ids, nil
}
