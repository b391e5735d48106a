package user

import (
	"net/http"
	"strconv"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"

	"github.com/go-chi/chi/v5"
)

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, "GetUser", err)
		return
	}
	u, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, "GetUser", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}

func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.fail(w, "GetUserByUsername", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.fail(w, "GetUserByEmail", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(u))
}
