package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/repository"
	"fincalc/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("error loading configuration: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	calculationRepo := repository.NewCalculationRepositoryMemory(cfg.HistoryLimit)
	cache := newCache(cfg, logger)

	loanService := service.NewLoanService(calculationRepo, cache, logger)
	investmentService := service.NewInvestmentService(calculationRepo, cache, logger)
	termComparisonService := service.NewTermComparisonService(logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:           httpLayer.NewLoanHandler(loanService, logger),
		Investment:     httpLayer.NewInvestmentHandler(investmentService, logger),
		TermComparison: httpLayer.NewTermComparisonHandler(termComparisonService, logger),
		History:        httpLayer.NewHistoryHandler(calculationRepo, logger),
	}, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("error starting server")
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("error during server shutdown")
	}

	if closer, ok := cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.WithError(err).Warn("error closing cache")
		}
	}

	logger.Info("server exited")
}

// newCache uses Redis when configured and reachable, falling back to an
// in-memory cache otherwise.
func newCache(cfg *config.Config, logger *logrus.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, caching results in memory")
		return repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unreachable, caching results in memory")
		_ = redisCache.Close()
		return repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	}

	logger.WithField("addr", cfg.RedisAddr).Info("caching results in redis")
	return redisCache
}
