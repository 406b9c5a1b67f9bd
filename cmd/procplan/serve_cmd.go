package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procplan/db/migrations"
	"procplan/internal/handlers"
	"procplan/internal/session"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(envFile *string) *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *envFile)
			if err != nil {
				return err
			}
			defer a.Close()

			if !skipMigrations {
				if err := migrations.Run(a.dbConn.DB); err != nil {
					return err
				}
			}

			sessions, closeSessions, err := newSessionStore(ctx, a)
			if err != nil {
				return err
			}
			defer closeSessions()

			h := handlers.NewHandler(a.engine, sessions, logrus.NewEntry(a.logger))
			srv := &http.Server{
				Addr:              a.cfg.ServerAddress,
				Handler:           handlers.NewRouter(h, a.cfg.MetricsPath),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Infof("Starting server on %s", a.cfg.ServerAddress)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on start")
	return cmd
}

// newSessionStore - Redis, если задан REDIS_URL, иначе память процесса.
// Возвращаемая функция закрывает соединение с Redis.
func newSessionStore(ctx context.Context, a *app) (session.Store, func() error, error) {
	if a.cfg.RedisURL == "" {
		a.logger.Warn("REDIS_URL is not set, sessions are kept in memory")
		return session.NewMemoryStore(a.cfg.SessionTTL), func() error { return nil }, nil
	}
	client, err := session.NewRedisClient(a.cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return session.NewRedisStore(client, a.cfg.SessionTTL), client.Close, nil
}
