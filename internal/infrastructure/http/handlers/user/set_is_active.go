package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *UserHandler) SetIsActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, "SetIsActive", err)
		return
	}
	var req dto.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", utils.ValidationMessage(err))
		return
	}

	h.log.Info("SetIsActive request", slog.Int64("user_id", id), slog.Bool("is_active", *req.IsActive))

	u, err := h.userService.UpdateUserActive(r.Context(), id, *req.IsActive)
	if err != nil {
		h.fail(w, "SetIsActive", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}
