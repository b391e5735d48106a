package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	input "splitwise-platform/internal/domain/ports/input"
	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/utils"
)

type AuthHandler struct {
	userService input.UserInputPort
	tokens      *jwtauth.Manager
	log         *logger.Logger
}

func NewAuthHandler(userSvc input.UserInputPort, tokens *jwtauth.Manager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{userService: userSvc, tokens: tokens, log: log}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ValidationMessage(err))
		return
	}

	u, err := h.userService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		status := utils.WriteDomainError(w, err)
		h.log.Warn("Login rejected", slog.String("login", req.Login), slog.Int("status", status))
		return
	}

	token, err := h.tokens.Generate(u.ID, u.Username, u.Role)
	if err != nil {
		h.log.Error("Login token generation failed", slog.Int64("user_id", u.ID), slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPStatusToCode(http.StatusInternalServerError), utils.ErrorMessage)
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
		User:      dto.ToUserDTO(u),
	})
}
