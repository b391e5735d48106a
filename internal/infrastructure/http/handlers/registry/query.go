package registry

import (
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *RegistryHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.registry.ListApplications(r.Context())
	if err != nil {
		h.fail(w, "ListApplications", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToApplicationsEnvelope(apps))
}

func (h *RegistryHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	a, err := h.registry.GetApplication(r.Context(), chi.URLParam(r, "app"))
	if err != nil {
		h.fail(w, "GetApplication", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ApplicationEnvelope{Application: dto.ToApplicationInfo(a)})
}

func (h *RegistryHandler) GetInstance(w http.ResponseWriter, r *http.Request) {
	app, id := appAndID(r)
	inst, err := h.registry.GetInstance(r.Context(), app, id)
	if err != nil {
		h.fail(w, "GetInstance", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]dto.InstanceInfo{"instance": dto.ToInstanceInfo(inst)})
}
