// Integration scenario for the file-backed stores: exercises the whole
// data layer end to end against real files in a temp directory.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	activityctrl "moviemania/internal/controller/activity"
	catalogctrl "moviemania/internal/controller/catalog"
	userctrl "moviemania/internal/controller/user"
	activityrepo "moviemania/internal/repository/activity"
	catalogrepo "moviemania/internal/repository/catalog"
	credentialrepo "moviemania/internal/repository/credential"
	"moviemania/pkg/model"
)

func main() {
	log.Println("Starting the integration scenario")

	ctx := context.Background()
	logger := zap.NewNop()
	dir, err := os.MkdirTemp("", "moviemania-integration-*")
	if err != nil {
		log.Fatalf("temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	moviesPath := filepath.Join(dir, "movies.csv")
	catalogRepo := catalogrepo.New(moviesPath, logger)
	catalog := catalogctrl.New(catalogRepo, logger)

	log.Println("Seeding the catalog")
	movies := []model.Movie{
		{ID: 1, Title: "A", Year: 2000, MainCast: "Cast A", Rating: 5.0, Genre: "Drama", Description: "a"},
		{ID: 2, Title: "B", Year: 2010, MainCast: "Cast B", Rating: 9.0, Genre: "Action", Description: "b"},
	}
	for _, m := range movies {
		if err := catalog.Add(ctx, &m); err != nil {
			log.Fatalf("add movie %d: %v", m.ID, err)
		}
	}

	log.Println("Filtering by minimum rating")
	highRated, err := catalog.Search(ctx, catalogctrl.Criteria{MinRating: 8.0})
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	if len(highRated) != 1 || highRated[0].ID != 2 {
		log.Fatalf("search by min rating: want only movie 2, got %v", highRated)
	}

	log.Println("Deleting movie 1 and reloading from disk")
	removed, err := catalog.Remove(ctx, 1)
	if err != nil || !removed {
		log.Fatalf("remove movie 1: removed=%v err=%v", removed, err)
	}
	all, err := catalog.Browse(ctx)
	if err != nil {
		log.Fatalf("browse: %v", err)
	}
	if len(all) != 1 {
		log.Fatalf("browse after delete: want 1 movie, got %d", len(all))
	}

	freshRepo := catalogrepo.New(moviesPath, logger)
	if err := freshRepo.Load(ctx); err != nil {
		log.Fatalf("reload: %v", err)
	}
	reloaded, err := freshRepo.All(ctx)
	if err != nil {
		log.Fatalf("reloaded all: %v", err)
	}
	if diff := cmp.Diff([]model.Movie{movies[1]}, reloaded); diff != "" {
		log.Fatalf("reloaded catalog mismatch: %v", diff)
	}

	log.Println("Registering and logging in")
	credRepo := credentialrepo.New(filepath.Join(dir, "UserPass.csv"), bcrypt.MinCost, logger)
	users := userctrl.New(credRepo, func() []byte { return []byte("test-secret") }, time.Hour, nil, logger)
	if err := users.Register(ctx, "alice", "secret"); err != nil {
		log.Fatalf("register: %v", err)
	}
	session, err := users.Login(ctx, "alice", "secret")
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	if _, err := users.Verify(session.Token); err != nil {
		log.Fatalf("verify: %v", err)
	}

	log.Println("Adding favorites concurrently")
	favStore := activityrepo.New(filepath.Join(dir, "UserFavorites.csv"), "favorites", logger)
	favorites := activityctrl.New(favStore, freshRepo, "favorites", logger)

	if err := freshRepo.Insert(ctx, &movies[0]); err != nil {
		log.Fatalf("re-insert movie 1: %v", err)
	}
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []model.MovieID{1, 2} {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = favorites.Add(ctx, session.Username, id)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			log.Fatalf("concurrent add: %v", err)
		}
	}
	entries, err := favorites.List(ctx, session.Username)
	if err != nil {
		log.Fatalf("list favorites: %v", err)
	}
	if len(entries) != 2 {
		log.Fatalf("concurrent adds lost an update: %v", entries)
	}

	log.Println("Duplicate add is a no-op")
	outcome, err := favorites.Add(ctx, session.Username, 2)
	if err != nil || outcome != model.AlreadyPresent {
		log.Fatalf("duplicate add: outcome=%v err=%v", outcome, err)
	}

	log.Println("Integration scenario passed")
}
