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

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/court-booking/internal/config"
	"github.com/BruksfildServices01/court-booking/internal/factory"
	"github.com/BruksfildServices01/court-booking/internal/logger"
	"github.com/BruksfildServices01/court-booking/internal/middleware"
	"github.com/BruksfildServices01/court-booking/internal/ratelimit"
	"github.com/BruksfildServices01/court-booking/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", false)
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	limiter := newLimiter(ctx, cfg, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	if err := routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Store:   store,
		Limiter: limiter,
	}); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr()).Str("storage", cfg.StorageType).Msg("server running")
	return serve(ctx, srv, log)
}

// serve blocks until the listener fails or ctx is done, then shuts the
// server down gracefully.
func serve(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// newLimiter prefers Redis so limits hold across instances, and falls back
// to a per-process bucket when REDIS_URL is unset or unreachable.
func newLimiter(ctx context.Context, cfg *config.Config, log zerolog.Logger) ratelimit.Limiter {
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err == nil {
			log.Info().Msg("rate limiting backed by redis")
			return ratelimit.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute)
		}
		log.Warn().Err(err).Msg("redis unavailable, using in-memory rate limiting")
	}

	limiter := ratelimit.NewMemoryLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, 10*time.Minute)
	go limiter.Run(ctx)
	return limiter
}
