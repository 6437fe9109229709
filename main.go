package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"techimpact/config"
	httpLayer "techimpact/http"
	"techimpact/repository"
	"techimpact/service"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		boot := config.NewLogger(config.Default().Log, os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := config.NewLogger(cfg.Log, os.Stderr)

	ctx := context.Background()

	cache := newCache(ctx, cfg.Cache, log)

	leadRepo, closeLeads := newLeadRepository(ctx, cfg.Leads, log)
	defer closeLeads()

	tierRows, err := repository.LoadTierScheme(cfg.Tiers.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Tiers.File).Msg("failed to load tier scheme")
	}

	slaService := service.NewSLAService(tierRows, cache, log)
	downtimeService := service.NewDowntimeService(cache, log)
	rtoService := service.NewRTOService(cache, log)
	partialService := service.NewPartialService(repository.NewPartialSource(cfg.Partials.Dir, cfg.Partials.BaseURL), log)
	notifier := service.NewSendGridNotifier(cfg.Notify.SendGridAPIKey, cfg.Notify.From, cfg.Notify.To, log)
	leadService := service.NewLeadService(leadRepo, notifier, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		SLA:      httpLayer.NewSLAHandler(slaService, log),
		Downtime: httpLayer.NewDowntimeHandler(downtimeService, log),
		RTO:      httpLayer.NewRTOHandler(rtoService, log),
		State:    httpLayer.NewStateHandler(),
		Partials: httpLayer.NewPartialHandler(partialService),
		Leads:    httpLayer.NewLeadHandler(leadService, log),
	}, rateLimiter, log)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Server.Address).Bool("email", notifier.Enabled()).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("error starting server")
		return
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}

// newCache prefers Redis and falls back to an in-process cache when Redis
// is not configured or not reachable.
func newCache(ctx context.Context, cfg config.CacheConfig, log zerolog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.TTL)
	}

	redis := repository.NewRedisCache(cfg.RedisAddr, cfg.TTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redis.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using memory cache")
		_ = redis.Close()
		return repository.NewMemoryCache(cfg.TTL)
	}
	return redis
}

func newLeadRepository(ctx context.Context, cfg config.LeadsConfig, log zerolog.Logger) (repository.LeadRepository, func()) {
	if cfg.PostgresDSN == "" {
		return repository.NewLeadRepositoryMemory(), func() {}
	}

	repo, err := repository.NewLeadRepositoryPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open lead store")
	}
	return repo, func() {
		if err := repo.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close lead store")
		}
	}
}
