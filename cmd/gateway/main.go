package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/discovery"
	"splitwise-platform/internal/infrastructure/gateway"
	httpserver "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/loadbalancer"
	"splitwise-platform/internal/infrastructure/logger"
)

func main() {
	cfg := config.MustLoad(config.Gateway)
	log := logger.New(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	table, err := gateway.NewRouteTable(cfg.Gateway.Routes)
	if err != nil {
		log.Error("Invalid gateway routes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, r := range table.Routes() {
		log.Info("Route configured",
			slog.String("id", r.ID),
			slog.String("path_prefix", r.PathPrefix),
			slog.String("service", r.Service),
			slog.String("url", r.URL),
			slog.Bool("auth_required", r.AuthRequired),
			slog.Any("methods", r.Methods),
		)
	}

	client := discovery.NewClient(cfg.Discovery.URL, 5*time.Second)
	cache := discovery.NewCache(client, cfg.Discovery.FetchInterval, log)
	go cache.Run(ctx)

	tokens := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	gw := gateway.New(table, cache, loadbalancer.NewRandomInstanceSelector(), tokens, log, cfg.Gateway.UpstreamTimeout)

	router := httpserver.NewGatewayRouter(log, gw)
	if err := router.Setup(ctx, cfg); err != nil {
		log.Error("Invalid gateway configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	server := httpserver.NewServer(cfg.HTTPServer, log, router.GetRouter())

	agentDone := make(chan struct{})
	if cfg.Discovery.Enabled {
		agent := discovery.NewAgent(client, discovery.SelfInstance(cfg), cfg.Discovery.HeartbeatInterval, log)
		go func() {
			defer close(agentDone)
			if err := agent.Run(ctx); err != nil {
				log.Error("Discovery registration failed", slog.String("error", err.Error()))
			}
		}()
	} else {
		close(agentDone)
	}

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
	log.Info("Shutting down gateway...")

	cancel()
	<-agentDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
