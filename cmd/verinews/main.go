// cmd/verinews/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
)

func main() {
	fmt.Println(AppName + " v" + AppVersion + " starting up...")

	cfg, err := LoadConfig(DefaultConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := InitLogger(cfg.LogPath, cfg.LogLevel); err != nil {
		log.Printf("Warning: file logging unavailable: %v", err)
	}
	defer Logger().Close()

	cache := NewCache(DefaultCacheTTL, MaxCacheItems)
	metrics := NewMetricsRegistry()
	errBuffer := NewErrorBuffer(100)

	aggregator := NewAggregatorFromConfig(cfg, errBuffer, metrics)
	ai := NewAIVerifier(cfg.GroqAPIKey)
	if ai == nil {
		Logger().Warning("GROQ_API_KEY not configured - AI verification disabled, rule-based path only")
	}

	verifier := NewVerifier(aggregator, ai, DefaultOverrides(), cache, metrics)
	server := NewServer(cfg, verifier, ai, cache, metrics, errBuffer)

	// Periodic maintenance
	cronManager := cron.New()
	if _, err := cronManager.AddFunc(DefaultCacheSweep, func() {
		if removed := cache.Sweep(); removed > 0 {
			Logger().Info("Cache sweep removed %d expired entries", removed)
		}
	}); err != nil {
		Logger().Error("Failed to schedule cache sweep: %v", err)
	}
	if _, err := cronManager.AddFunc("@hourly", func() {
		snap := metrics.Snapshot(cache)
		Logger().Info("Metrics: verify=%d search=%d ai=%d mock=%d cacheHitRate=%.2f",
			snap.VerifyRequests, snap.SearchRequests, snap.AIVerifications,
			snap.MockFallbacks, snap.CacheHitRate)
	}); err != nil {
		Logger().Error("Failed to schedule metrics snapshot: %v", err)
	}
	cronManager.Start()
	defer cronManager.Stop()

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			Logger().Error("Server error: %v", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		Logger().Info("Received signal %v, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			Logger().Error("Shutdown error: %v", err)
		}
	}

	Logger().Info("Shutdown complete")
}
