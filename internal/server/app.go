// Package server initializes and runs the sync server: it connects the
// primary, mirror, blob and search stores, wires the event pipelines and
// serves the ingest endpoint until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fkkmemi/boardsync/internal/logging"
	"github.com/fkkmemi/boardsync/internal/server/blobstore"
	"github.com/fkkmemi/boardsync/internal/server/config"
	"github.com/fkkmemi/boardsync/internal/server/httpapi"
	"github.com/fkkmemi/boardsync/internal/server/maintain"
	"github.com/fkkmemi/boardsync/internal/server/mirror"
	"github.com/fkkmemi/boardsync/internal/server/repositories/repomanager"
	"github.com/fkkmemi/boardsync/internal/server/searchindex"
)

type App struct {
	config *config.Config
	logger logging.Logger

	repos       repomanager.RepositoryManager
	mirrorStore *mirror.SurrealStore
	router      *maintain.Router
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	repos, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	mirrorStore, err := mirror.Connect(cfg.MirrorURL, cfg.MirrorUser, cfg.MirrorPassword,
		cfg.MirrorNamespace, cfg.MirrorDatabase)
	if err != nil {
		return nil, fmt.Errorf("mirror init error: %w", err)
	}

	blobs, err := blobstore.NewS3Store(ctx, cfg.S3RootUser, cfg.S3RootPassword,
		cfg.S3Bucket, cfg.S3Region, cfg.S3BaseEndpoint)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	index := searchindex.NewAlgoliaIndexer(cfg.SearchAppID, cfg.SearchAPIKey, cfg.SearchIndex)

	router := maintain.NewRouter(
		logger,
		maintain.NewAccountMirrorer(repos.Accounts(), mirrorStore, cfg.AdminEmail),
		maintain.NewCounterMaintainer(repos.Counters()),
		maintain.NewFieldMerger(repos.Boards()),
		maintain.NewCascadeCoordinator(repos.Articles(), repos.Comments(), blobs),
		maintain.NewTempFileCollector(repos.TempFiles(), blobs, logger,
			cfg.TempFileTTL, cfg.TempFileSweepLimit),
		maintain.NewSearchSynchronizer(index),
	)

	return &App{
		config:      cfg,
		logger:      logger,
		repos:       repos,
		mirrorStore: mirrorStore,
		router:      router,
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

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	engine := httpapi.NewRouter(app.router, app.config.SecretKey, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "http shutdown error", "error", err.Error())
	}

	app.mirrorStore.Close()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err.Error())
	}

	return nil
}
