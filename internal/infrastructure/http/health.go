package http

import (
	"context"
	"net/http"
	"time"

	"splitwise-platform/internal/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}

// readyHandler reports DOWN when the dependency does not answer within two seconds.
func readyHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p == nil {
			healthHandler(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			_ = utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "DOWN"})
			return
		}
		_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
	}
}
