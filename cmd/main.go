package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adsdesk/db/migrations"
	"adsdesk/internal/adapter/http"
	"adsdesk/internal/adapter/postgres"
	"adsdesk/internal/adapter/upstream"
	"adsdesk/internal/adapter/usecase"
	"adsdesk/internal/config"
	"adsdesk/internal/core/cache"
	"adsdesk/internal/core/wizard"
	"adsdesk/internal/db"
)

// main is the entry point of the ads console backend. It loads
// configuration, optionally runs database migrations, wires the ads platform
// client, the read-model cache and the use cases, then serves HTTP until it
// receives a termination signal.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			logger.Error("migration error", slog.Any("error", err), slog.Uint64("version", uint64(from)))
			return
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	store, err := cache.New(cfg.Cache.Size,
		cache.WithLogger(logger.With(slog.String("component", "cache"))),
		cache.WithRefetchTimeout(cfg.Cache.RefetchTimeout))
	if err != nil {
		logger.Error("cache init error", slog.Any("error", err))
		return
	}
	defer store.Close()

	api := upstream.New(cfg.Upstream, logger.With(slog.String("component", "upstream")))
	notes := postgres.NewNotificationRepository(pool)

	catalog := usecase.NewCatalogUseCase(api, store)
	mutations := usecase.NewMutationUseCase(api, store, notes, logger)
	wiz := usecase.NewWizardUseCase(usecase.WizardConfig{
		Rules: wizard.Rules{
			LeadObjective:          cfg.Wizard.LeadObjective,
			OptimizationObjectives: cfg.Wizard.OptimizationObjectives,
		},
		Scheduler:    wizard.RealScheduler{},
		AdvanceDelay: cfg.Wizard.AdvanceDelay,
		SessionLimit: cfg.Wizard.SessionLimit,
	}, mutations, logger)
	defer wiz.CloseAll()

	handler := httpadapter.NewHandler(catalog, mutations, wiz, logger, cfg.HTTP.NotificationLimit)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
		return
	}
	logger.Info("server gracefully stopped")
}
