// Package catalog implements the movie catalog business logic.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"moviemania/internal/repository"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

// ErrNotFound is returned when the requested movie does not exist.
var ErrNotFound = errors.New("movie not found")

// ErrDuplicateId is returned when adding a movie whose id is already in use.
var ErrDuplicateId = errors.New("movie id already in use")

type catalogRepository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	All(ctx context.Context) ([]model.Movie, error)
	Get(ctx context.Context, id model.MovieID) (*model.Movie, error)
	Insert(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, id model.MovieID, mutate func(*model.Movie)) error
	Delete(ctx context.Context, id model.MovieID) (bool, error)
}

// Controller defines a movie catalog controller. Every mutation flushes the
// repository back to its backing file before returning, so the file always
// reflects the last completed operation.
type Controller struct {
	repo     catalogRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// New creates a movie catalog controller.
func New(repo catalogRepository, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "catalog"),
	)
	return &Controller{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Load reads the catalog from its backing file.
func (c *Controller) Load(ctx context.Context) error {
	return c.repo.Load(ctx)
}

// Browse returns every movie in catalog order.
func (c *Controller) Browse(ctx context.Context) ([]model.Movie, error) {
	return c.repo.All(ctx)
}

// Get returns the movie with the given id or ErrNotFound.
func (c *Controller) Get(ctx context.Context, id model.MovieID) (*model.Movie, error) {
	m, err := c.repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return m, nil
}

// Search returns the movies matching all provided criteria, in catalog
// order.
func (c *Controller) Search(ctx context.Context, criteria Criteria) ([]model.Movie, error) {
	movies, err := c.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(movies, criteria), nil
}

// Add validates and inserts a new movie, then saves the catalog. The id
// must not be in use.
func (c *Controller) Add(ctx context.Context, m *model.Movie) error {
	if err := c.validate.Struct(m); err != nil {
		return fmt.Errorf("invalid movie: %w", err)
	}
	if err := c.repo.Insert(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicateId) {
			return ErrDuplicateId
		}
		return err
	}
	c.logger.Info("Added movie", zap.Uint64(logging.FieldMovieID, uint64(m.ID)))
	return c.repo.Save(ctx)
}

// Update applies mutate to the stored movie, validates the result and saves
// the catalog.
func (c *Controller) Update(ctx context.Context, id model.MovieID, mutate func(*model.Movie)) error {
	m, err := c.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	updated := *m
	mutate(&updated)
	updated.ID = id
	if err := c.validate.Struct(&updated); err != nil {
		return fmt.Errorf("invalid movie: %w", err)
	}
	if err := c.repo.Update(ctx, id, func(s *model.Movie) { *s = updated }); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.logger.Info("Updated movie", zap.Uint64(logging.FieldMovieID, uint64(id)))
	return c.repo.Save(ctx)
}

// Remove deletes the movie with the given id and saves the catalog,
// reporting whether a record was removed. Activity lists are untouched;
// entries for a removed movie are filtered out at read time.
func (c *Controller) Remove(ctx context.Context, id model.MovieID) (bool, error) {
	removed, err := c.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}
	c.logger.Info("Removed movie", zap.Uint64(logging.FieldMovieID, uint64(id)))
	return true, c.repo.Save(ctx)
}
