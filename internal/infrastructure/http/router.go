package http

import (
	"net/http"

	input "splitwise-platform/internal/domain/ports/input"
	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/http/handlers/auth"
	"splitwise-platform/internal/infrastructure/http/handlers/user"
	middlewares "splitwise-platform/internal/infrastructure/http/middleware"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router serves the user service API.
type Router struct {
	router *chi.Mux
	log    *logger.Logger

	userService input.UserInputPort
	tokens      *jwtauth.Manager
	db          Pinger
}

func NewRouter(log *logger.Logger, userSvc input.UserInputPort, tokens *jwtauth.Manager, db Pinger) *Router {
	return &Router{
		router:      chi.NewRouter(),
		log:         log,
		userService: userSvc,
		tokens:      tokens,
		db:          db,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	metrics.Register()

	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(middlewares.Metrics(cfg.ServiceName))
	if cfg.HTTPServer.RequestTimeout > 0 {
		r.router.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))
	}

	r.router.Get("/health", healthHandler)
	r.router.Get("/ready", readyHandler(r.db))
	r.router.Handle("/metrics", metrics.Handler())

	r.router.Mount("/api/users", r.setupUserRoutes())
	r.router.Mount("/api/auth", r.setupAuthRoutes())
}

func (r *Router) setupUserRoutes() http.Handler {
	h := user.NewUserHandler(r.userService, r.log)
	sub := chi.NewRouter()
	sub.Post("/", h.Create)
	sub.Get("/", h.List)
	sub.Get("/active", h.ListActive)
	sub.Get("/inactive", h.ListInactive)
	sub.Get("/search", h.Search)
	sub.Get("/by-name", h.ByName)
	sub.Get("/stats", h.Stats)
	sub.Get("/exists", h.Exists)
	sub.Get("/username/{username}", h.GetByUsername)
	sub.Get("/email/{email}", h.GetByEmail)
	sub.Get("/{id}", h.GetByID)
	sub.Put("/{id}", h.Update)
	sub.Patch("/{id}/active", h.SetIsActive)
	sub.Delete("/{id}", h.Delete)
	return sub
}

func (r *Router) setupAuthRoutes() http.Handler {
	h := auth.NewAuthHandler(r.userService, r.tokens, r.log)
	sub := chi.NewRouter()
	sub.Post("/login", h.Login)
	return sub
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
