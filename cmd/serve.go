package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-planner/internal/adapter/catalog"
	"campaign-planner/internal/adapter/estimator"
	"campaign-planner/internal/adapter/http"
	"campaign-planner/internal/adapter/memory"
	"campaign-planner/internal/adapter/notify"
	"campaign-planner/internal/adapter/postgres"
	redisadapter "campaign-planner/internal/adapter/redis"
	"campaign-planner/internal/adapter/scheduler"
	"campaign-planner/internal/adapter/usecase"
	"campaign-planner/internal/config"
	"campaign-planner/internal/config/configs"
	"campaign-planner/internal/core/port"
	"campaign-planner/internal/db"
	"campaign-planner/internal/observability"
)

// backends are the stores selected by configuration. close releases the
// connections that were opened.
type backends struct {
	audiences port.AudienceProvider
	templates port.TemplateProvider
	settings  port.SettingsStore
	close     func()
}

func openBackends(ctx context.Context, cfg config.Config, logger *slog.Logger) (*backends, error) {
	b := &backends{close: func() {}}

	var pool *pgxpool.Pool
	if cfg.Settings.NeedsPostgres() {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, errors.Wrap(err, "migrate")
			}
			logger.Info("migrations applied successfully")
		}
		var err error
		if pool, err = db.NewPostgresPool(ctx, cfg.Psql); err != nil {
			return nil, errors.Wrap(err, "database connection")
		}
		b.close = pool.Close
	}

	switch cfg.Settings.Catalog {
	case configs.CatalogPostgres:
		repo := postgres.NewCatalogRepository(pool)
		b.audiences, b.templates = repo, repo
	default:
		c, err := catalog.LoadFile(cfg.Settings.CatalogPath)
		if err != nil {
			b.close()
			return nil, err
		}
		provider := catalog.NewProvider(c)
		b.audiences, b.templates = provider, provider
		logger.Info("catalog loaded",
			slog.Int("audiences", len(c.Audiences)),
			slog.Int("templates", len(c.Templates)))
	}

	switch cfg.Settings.Backend {
	case configs.BackendPostgres:
		b.settings = postgres.NewSettingsStore(pool)
	case configs.BackendRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			b.close()
			return nil, errors.Wrap(err, "redis connection")
		}
		closePool := b.close
		b.close = func() {
			_ = client.Close()
			closePool()
		}
		b.settings = redisadapter.NewSettingsStore(client, cfg.Redis.KeyPrefix)
	default:
		b.settings = memory.NewSettingsStore()
	}
	return b, nil
}

// runServe wires the planner and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func runServe(ctx context.Context, cfg config.Config) error {
	logger := cfg.Log.NewLogger(os.Stdout, cfg.Env)

	policy, err := cfg.Planner.Policy()
	if err != nil {
		return err
	}

	b, err := openBackends(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer b.close()

	metrics := observability.NewPrometheusRegistry()
	svc := usecase.NewSchedulerUseCase(usecase.Dependencies{
		Audiences: b.audiences,
		Templates: b.templates,
		Settings:  b.settings,
		Notifier:  notify.NewSlogNotifier(logger),
		Estimator: estimator.New(),
		Metrics:   metrics,
		Logger:    logger,
		Policy:    policy,
	})
	if err = svc.Reload(ctx); err != nil {
		// keep the configured policy, the refresher will retry
		logger.Warn("stored settings not loaded", slog.Any("error", err))
	}

	if spec := cfg.Settings.RefreshSpec; spec != "" && cfg.Settings.Backend != configs.BackendMemory {
		refresher := scheduler.NewSettingsRefresher(svc, logger, spec)
		if err = refresher.Start(); err != nil {
			return err
		}
		defer refresher.Stop(context.Background())
	}

	handler := httpadapter.NewHandler(svc, logger, metrics)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
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
		return errors.Wrap(err, "server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
