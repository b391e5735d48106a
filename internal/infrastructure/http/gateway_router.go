package http

import (
	"context"
	"fmt"
	"net/http"

	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/gateway"
	middlewares "splitwise-platform/internal/infrastructure/http/middleware"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/metrics"
	"splitwise-platform/internal/utils"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// GatewayRouter is the single public entry point in front of the services.
type GatewayRouter struct {
	router  *chi.Mux
	log     *logger.Logger
	gateway *gateway.Gateway
}

func NewGatewayRouter(log *logger.Logger, gw *gateway.Gateway) *GatewayRouter {
	return &GatewayRouter{router: chi.NewRouter(), log: log, gateway: gw}
}

// Setup wires the filter chain. ctx bounds background work such as the rate
// limiter sweep. RealIP is left out on purpose: the gateway is the edge, so
// RemoteAddr is the peer and forwarding headers are only read from trusted proxies.
func (r *GatewayRouter) Setup(ctx context.Context, cfg *config.Config) error {
	metrics.Register()

	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.LoggingFilter(r.log))
	r.router.Use(middlewares.Metrics(cfg.ServiceName))
	r.router.Use(middlewares.CORS(cfg.Gateway.CORS.AllowedOrigins))
	if rl := cfg.Gateway.RateLimit; rl.Enabled {
		proxies, err := middlewares.ParseTrustedProxies(rl.TrustedProxies)
		if err != nil {
			return fmt.Errorf("gateway rate limit: %w", err)
		}
		r.router.Use(middlewares.RateLimit(ctx, rl.RPS, rl.Burst, proxies))
	}

	r.router.Get("/health", healthHandler)
	r.router.Handle("/metrics", metrics.Handler())
	r.router.Get("/gateway/routes", r.listRoutes)
	r.router.Handle("/*", r.gateway)
	return nil
}

func (r *GatewayRouter) listRoutes(w http.ResponseWriter, _ *http.Request) {
	_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"routes": r.gateway.Routes()})
}

func (r *GatewayRouter) GetRouter() *chi.Mux { return r.router }
