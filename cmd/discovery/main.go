package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	registryapp "splitwise-platform/internal/application/registry"
	"splitwise-platform/internal/domain/ports/output/registry"
	"splitwise-platform/internal/infrastructure/config"
	httpserver "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/persistence/memory"
	redisstore "splitwise-platform/internal/infrastructure/persistence/redis"
	"splitwise-platform/internal/infrastructure/worker"
)

func main() {
	cfg := config.MustLoad(config.Discovery)
	log := logger.New(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store registry.InstanceStore
	switch cfg.Registry.Store {
	case "redis":
		client, err := redisstore.Connect(ctx, cfg.Registry.Redis.Addr, cfg.Registry.Redis.Password, cfg.Registry.Redis.DB)
		if err != nil {
			log.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer client.Close()
		store = redisstore.NewRegistryStore(client, cfg.Registry.Redis.KeyPrefix, log)
		log.Info("Using redis registry store", slog.String("addr", cfg.Registry.Redis.Addr))
	default:
		store = memory.NewRegistryStore()
	}

	registryService := registryapp.NewService(store, log, registryapp.Config{
		LeaseDuration:    cfg.Registry.LeaseDuration,
		SelfPreservation: cfg.Registry.SelfPreservation,
		RenewalThreshold: cfg.Registry.RenewalThreshold,
	})

	evictor := worker.NewEvictionWorker(registryService, log, cfg.Registry.EvictionInterval)
	go evictor.Run(ctx)

	router := httpserver.NewDiscoveryRouter(log, registryService)
	router.Setup(cfg)
	server := httpserver.NewServer(cfg.HTTPServer, log, router.GetRouter())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	select {
	case <-quit:
	case <-done:
		done <- true
	}
	log.Info("Shutting down discovery server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
