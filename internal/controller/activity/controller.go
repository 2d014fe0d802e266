// Package activity implements favorites and watch-history operations for an
// authenticated user.
package activity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"moviemania/internal/repository"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

// ErrMovieNotFound is returned when adding an id that is not in the
// catalog.
var ErrMovieNotFound = errors.New("movie not found in catalog")

// ErrNoActivity is returned when removing from a user that has no activity
// recorded.
var ErrNoActivity = errors.New("no activity recorded for user")

type activityStore interface {
	Add(ctx context.Context, username string, id model.MovieID) (model.AddOutcome, error)
	Remove(ctx context.Context, username string, id model.MovieID) error
	ListFor(ctx context.Context, username string) ([]model.MovieID, error)
}

type movieGetter interface {
	Get(ctx context.Context, id model.MovieID) (*model.Movie, error)
}

// Controller defines an activity controller over one store instance
// (favorites or watch history). Entries are stored by movie id and resolved
// to titles through the catalog at read time, so a renamed movie shows its
// current title and a deleted one drops out of view.
type Controller struct {
	store  activityStore
	movies movieGetter
	logger *zap.Logger
}

// New creates an activity controller. kind names the instance in log
// output.
func New(store activityStore, movies movieGetter, kind string, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, kind),
	)
	return &Controller{store: store, movies: movies, logger: logger}
}

// Add records the movie for the username. The movie must exist in the
// catalog; a duplicate add reports AlreadyPresent and changes nothing.
func (c *Controller) Add(ctx context.Context, username string, id model.MovieID) (model.AddOutcome, error) {
	if _, err := c.movies.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrMovieNotFound
		}
		return "", err
	}
	return c.store.Add(ctx, username, id)
}

// Remove deletes the movie from the username's list. Removing an id that
// was never added is a no-op.
func (c *Controller) Remove(ctx context.Context, username string, id model.MovieID) error {
	err := c.store.Remove(ctx, username, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrNoActivity
	}
	return err
}

// List returns the username's entries in insertion order with titles
// resolved from the catalog. Ids whose movie no longer exists are skipped;
// they stay on disk so a restored catalog entry resurfaces them.
func (c *Controller) List(ctx context.Context, username string) ([]model.Entry, error) {
	ids, err := c.store.ListFor(ctx, username)
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, 0, len(ids))
	for _, id := range ids {
		m, err := c.movies.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.logger.Debug("Skipping entry for movie no longer in catalog",
					zap.String(logging.FieldUsername, username),
					zap.Uint64(logging.FieldMovieID, uint64(id)),
				)
				continue
			}
			return nil, err
		}
		entries = append(entries, model.Entry{ID: id, Title: m.Title})
	}
	return entries, nil
}
