package user

import (
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.fail(w, "ListUsers", err)
		return
	}
	active, err := utils.QueryBool(r, "active")
	if err != nil {
		h.fail(w, "ListUsers", err)
		return
	}
	res, err := h.userService.ListUsers(r.Context(), page, active)
	if err != nil {
		h.fail(w, "ListUsers", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserPageDTO(res))
}

func (h *UserHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListActiveUsers(r.Context())
	if err != nil {
		h.fail(w, "ListActiveUsers", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTOs(users))
}

func (h *UserHandler) ListInactive(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListInactiveUsers(r.Context())
	if err != nil {
		h.fail(w, "ListInactiveUsers", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTOs(users))
}
