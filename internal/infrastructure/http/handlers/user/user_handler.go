package user

import (
	"net/http"
	"strconv"

	input "splitwise-platform/internal/domain/ports/input"
	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/utils"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService input.UserInputPort
	log         *logger.Logger
}

func NewUserHandler(userSvc input.UserInputPort, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userSvc, log: log}
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, utils.NewBadRequest("invalid user id: %q", raw)
	}
	return id, nil
}

// pageRequest reads page, size, sort and direction query parameters.
func pageRequest(r *http.Request) (models.PageRequest, error) {
	page, err := utils.QueryInt(r, "page", utils.DefaultPageNumber)
	if err != nil {
		return models.PageRequest{}, err
	}
	size, err := utils.QueryInt(r, "size", utils.DefaultPageSize)
	if err != nil {
		return models.PageRequest{}, err
	}
	q := r.URL.Query()
	return models.PageRequest{
		Page:      page,
		Size:      size,
		SortBy:    q.Get("sort"),
		Direction: q.Get("direction"),
	}, nil
}

func (h *UserHandler) fail(w http.ResponseWriter, op string, err error) {
	status := utils.WriteDomainError(w, err)
	if status >= http.StatusInternalServerError {
		h.log.Error(op+" service failed", "err", err)
	}
}
