package user

import (
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.userService.UserStats(r.Context())
	if err != nil {
		h.fail(w, "UserStats", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.StatsDTO{Total: st.Total, Active: st.Active, Inactive: st.Inactive})
}

func (h *UserHandler) Exists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.userService.CheckAvailability(r.Context(), q.Get("username"), q.Get("email"))
	if err != nil {
		h.fail(w, "CheckAvailability", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToAvailabilityDTO(res))
}
