package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}

	h.log.Info("CreateUser request", slog.String("username", req.Username))

	u, err := h.userService.CreateUser(r.Context(), req.ToModel())
	if err != nil {
		h.fail(w, "CreateUser", err)
		return
	}
	w.Header().Set("Location", "/api/users/"+itoa(u.ID))
	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToUserDTO(u))
}
