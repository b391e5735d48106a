package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	userapp "splitwise-platform/internal/application/user"
	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/discovery"
	httpserver "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/migrator"
	"splitwise-platform/internal/infrastructure/persistence/postgres"
	pg_uow "splitwise-platform/internal/infrastructure/persistence/postgres/uow"
)

func main() {
	cfg := config.MustLoad(config.UserService)
	log := logger.New(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dsn := cfg.Database.DSN()

	if cfg.Database.AutoMigrate {
		if err := migrate(dsn, cfg.Database.MigrationsPath, log); err != nil {
			log.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, dsn, cfg.Database.MaxConns, log)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is empty, issued tokens are not secure")
	}
	tokens := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	uow := pg_uow.NewPostgresUOW(pool, log)
	userService := userapp.NewService(uow, log)

	router := httpserver.NewRouter(log, userService, tokens, pool)
	router.Setup(cfg)
	server := httpserver.NewServer(cfg.HTTPServer, log, router.GetRouter())

	agentDone := make(chan struct{})
	if cfg.Discovery.Enabled {
		client := discovery.NewClient(cfg.Discovery.URL, 5*time.Second)
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
	log.Info("Shutting down HTTP server...")

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

func migrate(dsn, path string, log *logger.Logger) error {
	m, err := migrator.NewMigrator(path, dsn, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", slog.String("error", err.Error()))
		}
	}()
	return m.Up()
}
