package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-dashboard-service/internal/config"
	"hr-dashboard-service/internal/infrastructure/nower"
	"hr-dashboard-service/internal/repository"
)

func TestNewSnapshotStoreDisabledWithoutURL(t *testing.T) {
	store, trMgr, closeStore, err := newSnapshotStore(context.Background(), config.Config{}, nower.New())
	require.NoError(t, err)
	require.IsType(t, repository.NoopStore{}, store)
	require.Nil(t, trMgr)
	require.NotPanics(t, closeStore)
}

func TestPoolConfigAppliesLimits(t *testing.T) {
	cfg, err := poolConfig(config.DatabaseConfig{
		URL:             "postgres://hr:hr@localhost:5432/hr?sslmode=disable",
		MaxConnections:  7,
		MinConnections:  2,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.Equal(t, int32(7), cfg.MaxConns)
	require.Equal(t, int32(2), cfg.MinConns)
	require.Equal(t, time.Minute, cfg.MaxConnIdleTime)
	require.Equal(t, time.Hour, cfg.MaxConnLifetime)

	_, err = poolConfig(config.DatabaseConfig{URL: "://bad"})
	require.Error(t, err)
}

func TestConnectWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := connectWithRetry(ctx, config.Config{Database: config.DatabaseConfig{
		URL: "postgres://hr:hr@127.0.0.1:1/hr?sslmode=disable&connect_timeout=1",
	}})
	require.Error(t, err)
}

func TestNewGatewayUsesConfig(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":1}}`))
	}))
	t.Cleanup(srv.Close)

	cfg := config.Config{
		ClickUp: config.ClickUpConfig{APIToken: "pk_test", TeamID: "team-1", BaseURL: srv.URL, Timeout: time.Second},
		Breaker: config.BreakerConfig{MaxRequests: 1, Timeout: time.Second, ConsecutiveFailures: 3},
	}
	gateway := newGateway(cfg, nower.New())

	require.True(t, gateway.TestConnection(context.Background()))
	require.Equal(t, "pk_test", auth)
	require.Equal(t, "team-1", gateway.TeamID())
}

func TestNewAndRunShutsDownOnCancel(t *testing.T) {
	cfg := config.Config{
		HTTP:     config.HTTPConfig{Port: "0"},
		ClickUp:  config.ClickUpConfig{APIToken: "pk_test", BaseURL: "http://127.0.0.1:1"},
		Breaker:  config.BreakerConfig{Disabled: true},
		Timeouts: config.TimeoutConfig{Shutdown: time.Second},
		Swagger:  config.SwaggerConfig{SpecPath: filepath.Join(t.TempDir(), "missing.yml")},
	}

	application, err := New(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
