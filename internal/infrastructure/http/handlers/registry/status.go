package registry

import (
	"net/http"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *RegistryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	app, id := appAndID(r)
	value := r.URL.Query().Get("value")
	if value == "" {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "value is required")
		return
	}
	inst, err := h.registry.UpdateStatus(r.Context(), app, id, models.InstanceStatus(value))
	if err != nil {
		h.fail(w, "UpdateStatus", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]dto.InstanceInfo{"instance": dto.ToInstanceInfo(inst)})
}
