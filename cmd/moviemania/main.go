// Command moviemania is the terminal front end for the movie catalog. It is
// thin presentation glue: every command calls into the controllers and
// prints their results.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"moviemania/configs"
	activityctrl "moviemania/internal/controller/activity"
	catalogctrl "moviemania/internal/controller/catalog"
	userctrl "moviemania/internal/controller/user"
	activityrepo "moviemania/internal/repository/activity"
	catalogrepo "moviemania/internal/repository/catalog"
	credentialrepo "moviemania/internal/repository/credential"
	"moviemania/pkg/limiter"
	"moviemania/pkg/logging"
	"moviemania/pkg/model"
)

const serviceName = "moviemania"

type app struct {
	cfg       configs.AppConfig
	logger    *zap.Logger
	catalog   *catalogctrl.Controller
	users     *userctrl.Controller
	favorites *activityctrl.Controller
	history   *activityctrl.Controller
}

var (
	configPath string
	token      string
	theApp     *app
)

func newApp(ctx context.Context, configPath string) (*app, error) {
	// .env is optional; it only supplies environment overrides.
	_ = godotenv.Load()

	logConfig := zap.NewProductionConfig()
	logger, err := logConfig.Build()
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String(logging.FieldService, serviceName))

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("failed to close config file", zap.Error(err))
		}
	}()
	var cfg configs.AppConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if v := os.Getenv("MOVIEMANIA_SESSION_SECRET"); v != "" {
		cfg.Auth.SessionSecret = v
	}
	if v := os.Getenv("MOVIEMANIA_ADMIN_PASSWORD"); v != "" {
		cfg.Auth.Admin.Password = v
	}
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	catalogRepo := catalogrepo.New(cfg.Data.MoviesPath(), logger)
	credRepo := credentialrepo.New(cfg.Data.CredentialsPath(), cfg.Auth.BcryptCost, logger)
	favStore := activityrepo.New(cfg.Data.FavoritesPath(), "favorites", logger)
	histStore := activityrepo.New(cfg.Data.WatchHistoryPath(), "watch-history", logger)

	secret := func() []byte { return []byte(cfg.Auth.SessionSecret) }
	ttl := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	lim := limiter.New(logger, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateBurst)

	a := &app{
		cfg:       cfg,
		logger:    logger,
		catalog:   catalogctrl.New(catalogRepo, logger),
		users:     userctrl.New(credRepo, secret, ttl, lim, logger),
		favorites: activityctrl.New(favStore, catalogRepo, "favorites", logger),
		history:   activityctrl.New(histStore, catalogRepo, "watch-history", logger),
	}
	if err := a.catalog.Load(ctx); err != nil {
		return nil, err
	}
	if err := credRepo.Seed(ctx, cfg.Auth.Admin.Username, cfg.Auth.Admin.Password, model.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to seed admin credential: %w", err)
	}
	return a, nil
}

// session verifies the --token flag and, when adminOnly is set, checks the
// administrator role.
func (a *app) session(adminOnly bool) (*model.Session, error) {
	if token == "" {
		return nil, errors.New("a session token is required, log in first and pass --token")
	}
	s, err := a.users.Verify(token)
	if err != nil {
		return nil, err
	}
	if adminOnly && !s.IsAdmin() {
		return nil, errors.New("this command requires an administrator session")
	}
	return s, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moviemania",
		Short:         "Browse and manage the Movie Mania catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			theApp = a
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "defaults.yaml", "configuration file")
	root.PersistentFlags().StringVar(&token, "token", "", "session token from a previous login")

	root.AddCommand(newRegisterCmd(), newLoginCmd(), newMoviesCmd())
	root.AddCommand(newActivityCmd("favorites", "Manage your favorite movies", func() *activityctrl.Controller { return theApp.favorites }))
	root.AddCommand(newActivityCmd("history", "Manage your watch history", func() *activityctrl.Controller { return theApp.history }))
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
