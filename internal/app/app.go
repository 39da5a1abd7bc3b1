package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/weektrack-backend/internal/auth"
	"github.com/heartmarshall/weektrack-backend/internal/config"
	tasksvc "github.com/heartmarshall/weektrack-backend/internal/service/task"
	usersvc "github.com/heartmarshall/weektrack-backend/internal/service/user"
	"github.com/heartmarshall/weektrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/weektrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// selected storage, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildInfo(),
		slog.String("env", cfg.App.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)
	if cfg.DevBypassActive() {
		logger.Warn("auth dev bypass enabled; requests without init data act as the dev user",
			slog.String("external_id", cfg.Telegram.DevExternalID))
	}

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, store, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler wires services and the HTTP stack on top of store.
func newHandler(cfg *config.Config, logger *slog.Logger, store *storage, limiter *middleware.RateLimiter) http.Handler {
	users := usersvc.NewService(logger, store.users, store.tasks, store.tx)
	tasks := tasksvc.NewService(logger, store.tasks, store.entries, store.tx)

	router := rest.NewRouter(rest.Routes{
		Health:   rest.NewHealthHandler(store.health, Version),
		Account:  rest.NewAccountHandler(users, logger),
		Tasks:    rest.NewTaskHandler(tasks, logger),
		Gate:     middleware.Gate(auth.NewVerifier(cfg.Telegram), cfg.Telegram, cfg.DevBypassActive(), logger),
		Identity: middleware.Identity(users, logger),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
	)(router)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
