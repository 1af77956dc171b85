package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	pgxv5 "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	trm "github.com/avito-tech/go-transaction-manager/trm/v2"
	manager "github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"hr-dashboard-service/internal/clickup"
	"hr-dashboard-service/internal/config"
	"hr-dashboard-service/internal/http/router"
	"hr-dashboard-service/internal/infrastructure/nower"
	"hr-dashboard-service/internal/repository"
	"hr-dashboard-service/internal/service"
)

// App отвечает за жизненный цикл сервиса.
type App struct {
	cfg        config.Config
	server     *http.Server
	closeStore func()
}

// New подготавливает зависимости приложения: шлюз ClickUp, историю отчётов, сервис, HTTP-роутер.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	nowerImpl := nower.New()
	gateway := newGateway(cfg, nowerImpl)

	store, trMgr, closeStore, err := newSnapshotStore(ctx, cfg, nowerImpl)
	if err != nil {
		return nil, err
	}

	if cfg.ClickUp.HealthCheck && !gateway.TestConnection(ctx) {
		slog.Warn("clickup is not reachable at startup", "base_url", cfg.ClickUp.BaseURL)
	}

	svc := service.New(gateway, store, cfg, trMgr, nowerImpl)

	var swaggerSpec []byte
	if data, err := os.ReadFile(cfg.Swagger.SpecPath); err != nil {
		slog.Warn("failed to load swagger spec", "path", cfg.Swagger.SpecPath, "error", err)
	} else {
		swaggerSpec = data
	}
	handler := router.New(svc, swaggerSpec, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		server:     srv,
		closeStore: closeStore,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		// Graceful shutdown: сводка дашборда может обрабатываться долго
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeouts.Shutdown)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.closeStore()
		return nil
	case err := <-errCh:
		a.closeStore()
		return err
	}
}

// newGateway создаёт клиент ClickUp, по умолчанию за circuit breaker.
func newGateway(cfg config.Config, n nower.Nower) *clickup.Client {
	opts := []clickup.Option{clickup.WithNower(n)}
	if !cfg.Breaker.Disabled {
		opts = append(opts, clickup.WithExecutor(clickup.NewBreaker(cfg.Breaker)))
	}
	return clickup.New(clickup.Config{
		BaseURL: cfg.ClickUp.BaseURL,
		Token:   cfg.ClickUp.APIToken,
		TeamID:  cfg.ClickUp.TeamID,
		Timeout: cfg.ClickUp.Timeout,
	}, opts...)
}

// newSnapshotStore подключает PostgreSQL для истории отчётов.
// Без database.url история не ведётся и используется NoopStore.
func newSnapshotStore(ctx context.Context, cfg config.Config, n nower.Nower) (service.SnapshotStore, trm.Manager, func(), error) {
	if !cfg.Database.Enabled() {
		slog.Info("snapshot history disabled: database url is empty")
		return repository.NoopStore{}, nil, func() {}, nil
	}

	if err := runMigrations(cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("migrations: %w", err)
	}

	pool, err := connectWithRetry(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	trMgr := manager.Must(pgxv5.NewDefaultFactory(pool))
	repo := repository.New(pool, n)
	return repo, trMgr, repo.Close, nil
}

func runMigrations(cfg config.Config) error {
	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// retryBackoff задержки перед попытками подключения к БД.
var retryBackoff = []time.Duration{0, time.Second, 2 * time.Second, 5 * time.Second}

// connectWithRetry подключается к БД с нарастающей задержкой между попытками.
func connectWithRetry(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	var lastErr error
	for attempt, delay := range retryBackoff {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		slog.Warn("failed to connect to database, retrying", "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("connect db: %w", lastErr)
}

func poolConfig(db config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(db.URL)
	if err != nil {
		return nil, err
	}
	if db.MaxConnections > 0 {
		poolCfg.MaxConns = db.MaxConnections
	}
	if db.MinConnections >= 0 {
		poolCfg.MinConns = db.MinConnections
	}
	if db.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = db.MaxConnIdleTime
	}
	if db.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = db.MaxConnLifetime
	}
	return poolCfg, nil
}
