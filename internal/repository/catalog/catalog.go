// Package catalog implements the file-backed movie catalog store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"moviemania/internal/recordio"
	"moviemania/internal/repository"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

// Header is the first row of the movies file.
var Header = []string{"Movie ID", "Title", "Year", "Main Cast", "Rating", "Genre", "Description", "Cover Image Path"}

// Repository defines a file-backed movie catalog repository. The in-memory
// collection is the working state; Save rewrites the whole backing file.
type Repository struct {
	mu     sync.RWMutex
	path   string
	movies []model.Movie
	logger *zap.Logger
}

// New creates a catalog repository backed by the file at path. The file is
// not touched until Load or Save.
func New(path string, logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "catalog-file"),
	)
	return &Repository{path: path, logger: logger}
}

// Load replaces the in-memory collection with the parsed contents of the
// backing file. The header row is skipped. A row that fails decoding is
// logged and skipped; only I/O failures abort the load. A missing file
// loads as an empty catalog.
func (r *Repository) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := recordio.ReadFile(r.path)
	if err != nil {
		if recordio.Missing(err) {
			r.logger.Info("Movies file does not exist yet, starting with an empty catalog",
				zap.String(logging.FieldFile, r.path))
			r.movies = nil
			return nil
		}
		return fmt.Errorf("failed to load movies from %s: %w", r.path, err)
	}

	movies := make([]model.Movie, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		m, err := model.MovieFromRow(i+1, row)
		if err != nil {
			var decodeErr *recordio.DecodeError
			if errors.As(err, &decodeErr) {
				r.logger.Warn("Skipping malformed movie row",
					zap.String(logging.FieldFile, r.path),
					zap.Int(logging.FieldLine, decodeErr.Line),
					zap.Error(err),
				)
				continue
			}
			return err
		}
		movies = append(movies, *m)
	}
	r.movies = movies
	r.logger.Info("Loaded movie catalog", zap.Int("count", len(movies)))
	return nil
}

// Save serializes the entire in-memory collection back to the backing file,
// header first, replacing previous contents.
func (r *Repository) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([][]string, 0, len(r.movies)+1)
	rows = append(rows, Header)
	for i := range r.movies {
		rows = append(rows, model.MovieToRow(&r.movies[i]))
	}
	if err := recordio.WriteFile(r.path, rows); err != nil {
		return fmt.Errorf("failed to save movies to %s: %w", r.path, err)
	}
	return nil
}

// All returns a copy of the catalog in load/insert order. Mutations must go
// through Insert, Update or Delete; the returned slice is the caller's own.
func (r *Repository) All(_ context.Context) ([]model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Movie, len(r.movies))
	copy(out, r.movies)
	return out, nil
}

// Get retrieves a movie by id.
func (r *Repository) Get(_ context.Context, id model.MovieID) (*model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.movies {
		if r.movies[i].ID == id {
			m := r.movies[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Insert adds a movie to the catalog. The id must not be in use.
func (r *Repository) Insert(_ context.Context, m *model.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.movies {
		if r.movies[i].ID == m.ID {
			return repository.ErrDuplicateId
		}
	}
	r.movies = append(r.movies, *m)
	return nil
}

// Update applies mutate to the stored movie with the given id. The id field
// itself is preserved.
func (r *Repository) Update(_ context.Context, id model.MovieID, mutate func(*model.Movie)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.movies {
		if r.movies[i].ID == id {
			mutate(&r.movies[i])
			r.movies[i].ID = id
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the movie with the given id, reporting whether a record
// was removed.
func (r *Repository) Delete(_ context.Context, id model.MovieID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.movies {
		if r.movies[i].ID == id {
			r.movies = append(r.movies[:i], r.movies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
