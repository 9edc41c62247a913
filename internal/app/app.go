// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/sambangiadharsh/algomind/internal/adapter/postgres"
	problemrepo "github.com/sambangiadharsh/algomind/internal/adapter/postgres/problem"
	sessionrepo "github.com/sambangiadharsh/algomind/internal/adapter/postgres/session"
	settingsrepo "github.com/sambangiadharsh/algomind/internal/adapter/postgres/settings"
	"github.com/sambangiadharsh/algomind/internal/auth"
	"github.com/sambangiadharsh/algomind/internal/config"
	"github.com/sambangiadharsh/algomind/internal/service/problem"
	"github.com/sambangiadharsh/algomind/internal/service/revision"
	"github.com/sambangiadharsh/algomind/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, runs
// migrations, builds the service graph, and serves HTTP until the context
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Revision.Timezone),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Config validation already proved the timezone loads.
	loc := revision.ParseTimezone(cfg.Revision.Timezone)

	problems := problemrepo.New(pool)
	sessions := sessionrepo.New(pool)
	settings := settingsrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	revisionSvc := revision.NewService(logger, problems, sessions, settings, txm, loc)
	problemSvc := problem.NewService(logger, problems, revisionSvc)

	validator := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		Validator: validator,
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Problems:  rest.NewProblemHandler(problemSvc, logger),
		Revision:  rest.NewRevisionHandler(revisionSvc, logger),
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
