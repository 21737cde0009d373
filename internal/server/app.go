// Package server wires the profile store together: repositories, optional
// cache and avatar archive, the REST router, and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/blob"
	"github.com/trananh2004/shopfront/internal/server/cache"
	"github.com/trananh2004/shopfront/internal/server/config"
	"github.com/trananh2004/shopfront/internal/server/httpapi"
	"github.com/trananh2004/shopfront/internal/server/repositories/repomanager"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
	db     *sql.DB
}

// NewApp assembles the store. The storage backend follows the config: a DSN
// selects PostgreSQL (with migrations), no DSN runs in memory. Redis and S3
// layers are attached only when configured.
func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("logger init: %w", err)
	}

	ctx := context.Background()

	var (
		manager repomanager.RepositoryManager
		db      *sql.DB
	)
	if c.DatabaseDSN != "" {
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		manager = repomanager.NewPostgresRepositoryManager()
		if err := manager.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	} else {
		manager = repomanager.NewInMemoryRepositoryManager()
	}

	var userRepo users.Repository = manager.Users(db)

	if c.S3BaseEndpoint != "" {
		archive, err := blob.NewAvatarArchive(ctx, blob.Config{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("avatar archive init: %w", err)
		}
		userRepo = blob.NewArchivingRepository(userRepo, archive, logger)
	}

	if c.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		userRepo = cache.NewUserCache(userRepo, client, c.CacheTTL, logger)
	}

	router := httpapi.NewRouter(userRepo, manager.Products(db), logger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: &http.Server{Addr: c.EndpointAddr, Handler: router},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or the listener fails, then
// shuts down gracefully.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "starting profile store", "addr", app.config.EndpointAddr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "server failed", "error", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "profile store stopped")
}
