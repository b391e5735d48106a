package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/logger"
)

type Server struct {
	address string
	log     *logger.Logger
	server  *http.Server
}

func NewServer(cfg config.HTTPServer, log *logger.Logger, handler http.Handler) *Server {
	return &Server{
		address: cfg.Addr(),
		log:     log,
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run blocks until the server stops; a graceful shutdown is not reported as an error.
func (s *Server) Run() error {
	s.log.Info("Starting server", slog.String("address", s.address))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
