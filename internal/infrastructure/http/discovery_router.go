package http

import (
	"net/http"

	input "splitwise-platform/internal/domain/ports/input"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/http/handlers/registry"
	middlewares "splitwise-platform/internal/infrastructure/http/middleware"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// DiscoveryRouter serves the registry REST API.
type DiscoveryRouter struct {
	router   *chi.Mux
	log      *logger.Logger
	registry input.RegistryInputPort
}

func NewDiscoveryRouter(log *logger.Logger, registry input.RegistryInputPort) *DiscoveryRouter {
	return &DiscoveryRouter{router: chi.NewRouter(), log: log, registry: registry}
}

func (r *DiscoveryRouter) Setup(cfg *config.Config) {
	metrics.Register()

	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(middlewares.Metrics(cfg.ServiceName))

	r.router.Get("/health", healthHandler)
	r.router.Handle("/metrics", metrics.Handler())
	r.router.Mount("/eureka/apps", r.setupRegistryRoutes())
}

func (r *DiscoveryRouter) setupRegistryRoutes() http.Handler {
	h := registry.NewRegistryHandler(r.registry, r.log)
	sub := chi.NewRouter()
	sub.Get("/", h.ListApplications)
	sub.Post("/{app}", h.Register)
	sub.Get("/{app}", h.GetApplication)
	sub.Get("/{app}/{id}", h.GetInstance)
	sub.Put("/{app}/{id}", h.Renew)
	sub.Delete("/{app}/{id}", h.Cancel)
	sub.Put("/{app}/{id}/status", h.UpdateStatus)
	return sub
}

func (r *DiscoveryRouter) GetRouter() *chi.Mux { return r.router }
