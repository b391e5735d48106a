package user

import (
	"encoding/json"
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, "UpdateUser", err)
		return
	}
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}

	u, err := h.userService.UpdateUser(r.Context(), id, req.ToModel())
	if err != nil {
		h.fail(w, "UpdateUser", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, "DeleteUser", err)
		return
	}
	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, "DeleteUser", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
