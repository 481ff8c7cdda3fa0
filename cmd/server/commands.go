package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/controller"
	"github.com/actuallystonmai/content-catalog/internal/handler"
	"github.com/actuallystonmai/content-catalog/internal/metrics"
	"github.com/actuallystonmai/content-catalog/internal/router"
	"github.com/actuallystonmai/content-catalog/internal/usecase"
	"github.com/actuallystonmai/content-catalog/migrations"
	"github.com/actuallystonmai/content-catalog/seeds"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var seedCount int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(seedCount)
		},
	}
	cmd.Flags().IntVar(&seedCount, "seed", 0, "load this many sample contents before serving")
	return cmd
}

func runServe(seedCount int) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	if seedCount > 0 {
		if err := seeds.Setup(ctx, repo, seedCount, time.Now()); err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
	}

	contents := controller.NewContentsController(
		usecase.NewCreateContent(repo),
		usecase.NewGetContent(repo),
		usecase.NewUpdateContent(repo),
		usecase.NewRemoveContent(repo),
	)
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Setup(handler.NewHandler(contents), router.Options{
			Logger:         logger,
			Metrics:        metrics.New(),
			Timeout:        cfg.RequestTimeout,
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert the Postgres schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := loadConfig()
				if err != nil {
					return err
				}
				if err := migrations.Up(cfg.DatabaseURL); err != nil {
					return fmt.Errorf("failed to migrate up: %w", err)
				}
				slog.Info("migrations applied successfully")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := loadConfig()
				if err != nil {
					return err
				}
				if err := migrations.Down(cfg.DatabaseURL); err != nil {
					return fmt.Errorf("failed to migrate down: %w", err)
				}
				slog.Info("migrations dropped successfully")
				return nil
			},
		},
	)
	return cmd
}

func newSeedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample contents into the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive")
			}
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			repo, closeRepo, err := openRepository(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeRepo()
			return seeds.Setup(cmd.Context(), repo, count, time.Now())
		},
	}
	cmd.Flags().IntVar(&count, "count", 50, "number of sample contents")
	return cmd
}
