package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/api"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
	"github.com/rpgbuilder/character-builder/internal/infrastructure/config"
	"github.com/rpgbuilder/character-builder/internal/infrastructure/db/memory"
	redisstore "github.com/rpgbuilder/character-builder/internal/infrastructure/db/redis"
	"github.com/rpgbuilder/character-builder/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "rpg-character-builder",
	})
	log := logger.Get()

	store, storeName, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open workspace store")
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e, err := api.NewRouter(api.Dependencies{
		Store:        store,
		StoreName:    storeName,
		Logger:       log,
		Registry:     reg,
		CookieSecure: cfg.CookieSecure,
		WorkspaceTTL: cfg.WorkspaceTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", storeName).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.WorkspaceStore, string, func(), error) {
	if cfg.StoreDriver == config.StoreRedis {
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, "", nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close")
			}
		}
		return redisstore.NewWorkspaceStore(client, cfg.WorkspaceTTL), "redis", closeFn, nil
	}

	store := memory.NewWorkspaceStore(cfg.WorkspaceTTL)
	store.StartSweeper(ctx, time.Minute, log)
	return store, "memory", func() {}, nil
}
