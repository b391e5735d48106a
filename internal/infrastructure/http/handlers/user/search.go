package user

import (
	"log/slog"
	"net/http"

	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		h.fail(w, "SearchUsers", err)
		return
	}
	term := r.URL.Query().Get("q")

	h.log.Debug("SearchUsers request", slog.String("q", term))

	res, err := h.userService.SearchUsers(r.Context(), term, page)
	if err != nil {
		h.fail(w, "SearchUsers", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserPageDTO(res))
}

func (h *UserHandler) ByName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	activeOnly, err := utils.QueryBool(r, "active_only")
	if err != nil {
		h.fail(w, "FindUsersByName", err)
		return
	}
	users, err := h.userService.FindUsersByName(r.Context(), q.Get("first_name"), q.Get("last_name"), activeOnly != nil && *activeOnly)
	if err != nil {
		h.fail(w, "FindUsersByName", err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTOs(users))
}
