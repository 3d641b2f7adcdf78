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

	"github.com/joelapexsolutions/lottery-api-service/internal/cache"
	"github.com/joelapexsolutions/lottery-api-service/internal/config"
	"github.com/joelapexsolutions/lottery-api-service/internal/logger"
	"github.com/joelapexsolutions/lottery-api-service/internal/results"
	"github.com/joelapexsolutions/lottery-api-service/internal/server"
	"github.com/joelapexsolutions/lottery-api-service/pkg/httpclient"
	"github.com/joelapexsolutions/lottery-api-service/pkg/lotteries"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("server starting", "config", cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry, err := lotteries.LoadRegistry(cfg.LotteriesFile)
	if err != nil {
		return fmt.Errorf("load lotteries catalog: %w", err)
	}
	catalog := registry.All()
	ids := make([]string, 0, len(catalog))
	for _, lot := range catalog {
		ids = append(ids, lot.ID)
	}
	logger.InfoObj("lotteries catalog loaded", "catalog_meta", map[string]any{
		"count": len(ids),
		"ids":   ids,
	})

	store, err := cache.NewStore(cfg.CacheType, cfg.BBoltPath, cache.Options{TTL: cfg.CacheTTL})
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.ErrorObj("cache close failed", "error", err)
		}
	}()
	logger.InfoObj("cache initialized", "cache_config", map[string]any{
		"type":        cfg.CacheType,
		"ttl_seconds": int(cfg.CacheTTL.Seconds()),
	})

	client := httpclient.NewRestyClient(cfg.FetchTimeout)
	svc := results.NewService(registry, client, store)
	router := server.NewRouter(svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.InfoObj("listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.InfoObj("server stopped", "reason", "signal")
	return nil
}
