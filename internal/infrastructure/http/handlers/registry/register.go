package registry

import (
	"encoding/json"
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *RegistryHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.InstanceEnvelope
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}

	if _, err := h.registry.Register(r.Context(), req.Instance.ToModel(chi.URLParam(r, "app"))); err != nil {
		h.fail(w, "Register", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RegistryHandler) Renew(w http.ResponseWriter, r *http.Request) {
	app, id := appAndID(r)
	if _, err := h.registry.Renew(r.Context(), app, id); err != nil {
		h.fail(w, "Renew", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *RegistryHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	app, id := appAndID(r)
	if err := h.registry.Cancel(r.Context(), app, id); err != nil {
		h.fail(w, "Cancel", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
