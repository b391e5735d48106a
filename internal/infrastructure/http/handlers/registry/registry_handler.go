package registry

import (
	"net/http"

	input "splitwise-platform/internal/domain/ports/input"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/utils"

	"github.com/go-chi/chi/v5"
)

type RegistryHandler struct {
	registry input.RegistryInputPort
	log      *logger.Logger
}

func NewRegistryHandler(registry input.RegistryInputPort, log *logger.Logger) *RegistryHandler {
	return &RegistryHandler{registry: registry, log: log}
}

func appAndID(r *http.Request) (string, string) {
	return chi.URLParam(r, "app"), chi.URLParam(r, "id")
}

func (h *RegistryHandler) fail(w http.ResponseWriter, op string, err error) {
	status := utils.WriteDomainError(w, err)
	if status >= http.StatusInternalServerError {
		h.log.Error(op+" failed", "err", err)
	}
}
