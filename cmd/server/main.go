package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/cache"
	"github.com/actuallystonmai/content-catalog/internal/config"
	"github.com/actuallystonmai/content-catalog/internal/repository"
	"github.com/actuallystonmai/content-catalog/migrations"
	"github.com/go-chi/httplog/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const serviceName = "content-catalog"

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Content catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file; environment variables override it")
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *httplog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := httplog.NewLogger(serviceName, httplog.Options{
		JSON:            cfg.LogJSON,
		LogLevel:        cfg.SlogLevel(),
		Concise:         true,
		QuietDownRoutes: []string{"/health", "/metrics"},
		QuietDownPeriod: 10 * time.Second,
		Tags:            map[string]string{"env": cfg.Environment},
	})
	slog.SetDefault(logger.Logger)
	return cfg, logger, nil
}

// openRepository builds the configured backend and, when REDIS_URL is set,
// puts the redis cache in front of it. The returned func releases connections.
func openRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func(), error) {
	var (
		repo    repository.Repository
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)

		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to migrate up: %w", err)
		}
		slog.Info("migrations applied")
		repo = repository.NewPostgres(pool)
	default:
		repo = repository.NewMemory()
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		closers = append(closers, func() { client.Close() })

		c := cache.NewCache(client, cfg.CacheTTL)
		if err := c.Ping(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		slog.Info("connected to Redis", "ttl", cfg.CacheTTL)
		repo = repository.NewCached(repo, c)
	}

	slog.Info("repository ready", "backend", cfg.StoreBackend, "cached", cfg.RedisURL != "")
	return repo, closeAll, nil
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := waitForDB(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	slog.Info("connected to PostgreSQL")
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		slog.Info("waiting for database...", "attempt", i+1, "max", 30)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}
