package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pinkpig777/cinestats/internal/backfill"
	"github.com/pinkpig777/cinestats/internal/config"
	"github.com/pinkpig777/cinestats/internal/core/storage"
	"github.com/pinkpig777/cinestats/internal/core/storage/memory"
	"github.com/pinkpig777/cinestats/internal/core/storage/postgres"
	"github.com/pinkpig777/cinestats/internal/ingestion"
	"github.com/pinkpig777/cinestats/internal/migrations"
	"github.com/pinkpig777/cinestats/internal/resolver"
	"github.com/pinkpig777/cinestats/internal/server"
	"github.com/pinkpig777/cinestats/internal/stats"
	"github.com/pinkpig777/cinestats/internal/tmdb"
)

type backend struct {
	events  storage.EventStore
	catalog storage.Catalog
	lister  backfill.MovieLister
	health  server.HealthChecker
	close   func() error
}

func main() {
	configPath := flag.String("config", "cinestats.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Bootstrap logger until config is read
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"tmdb_enabled", cfg.TMDB.Enabled(),
		"resolver_ttl", cfg.Resolver.TTL,
		"timezone", cfg.Stats.Timezone)

	// 2. Initialize Storage
	store, err := openBackend(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "type", cfg.Database.Type, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	// 3. Initialize metadata provider and runtime resolver
	var (
		runtimes stats.RuntimeResolver
		details  ingestion.DetailsFetcher
		res      *resolver.Resolver
	)
	if cfg.TMDB.Enabled() {
		client := tmdb.NewClient(cfg.TMDB)
		cache := resolver.NewLRUCache(cfg.Resolver.Capacity, cfg.Resolver.TTLDuration())
		res = resolver.New(cache, client, store.catalog)
		runtimes = res
		details = client
		slog.Info("Runtime resolver initialized",
			"capacity", cfg.Resolver.Capacity,
			"ttl", cfg.Resolver.TTLDuration())
	} else {
		slog.Warn("TMDB access token not set; runtime lookups and imports disabled")
	}

	// 4. Initialize Stats and Ingestion
	statsSvc := stats.NewService(store.events, store.catalog, runtimes,
		stats.WithTopLimit(cfg.Stats.TopLimit),
		stats.WithLocation(cfg.Stats.Location()),
	)
	ingestionSvc := ingestion.NewService(details, store.catalog)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store.health, cfg.Server.Mode)
	statsSvc.RegisterRoutes(srv.Engine)
	ingestionSvc.RegisterRoutes(srv.Engine)

	// 6. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	if cfg.Backfill.Enabled {
		if res == nil {
			slog.Warn("Runtime backfill enabled but TMDB is not configured; skipping")
		} else {
			scheduler := backfill.NewScheduler(cfg.Backfill.IntervalDuration(), store.lister, res, backfill.JobOptions{
				BatchSize:   cfg.Backfill.BatchSize,
				WorkerCount: cfg.Backfill.WorkerCount,
			})
			go func() {
				if err := scheduler.Start(ctx); err != nil {
					slog.Error("Runtime backfill scheduler stopped", "error", err)
				}
			}()
		}
	}

	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func openBackend(cfg config.DatabaseConfig) (*backend, error) {
	switch cfg.Type {
	case "memory":
		s := memory.NewStore()
		if cfg.SeedFile != "" {
			if err := memory.LoadSeedFile(s, cfg.SeedFile); err != nil {
				return nil, err
			}
		}
		return &backend{events: s, catalog: s, lister: s, close: func() error { return nil }}, nil

	case "postgres":
		db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		if err := migrations.Run(db, cfg.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		adapter, err := postgres.NewAdapterFromDB(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		catalog := postgres.NewCatalogAdapter(db)
		return &backend{
			events:  adapter,
			catalog: catalog,
			lister:  catalog,
			health:  adapter,
			close:   adapter.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
