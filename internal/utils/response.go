package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func HTTPStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case http.StatusBadGateway:
		return "BAD_GATEWAY"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

// ErrorStatus maps a domain error to the HTTP status and the message exposed to clients.
func ErrorStatus(err error) (int, string) {
	var badReq *BadRequestError
	switch {
	case errors.As(err, &badReq):
		return http.StatusBadRequest, badReq.Message
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, ValidationErrorMessage
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInstanceNotFound), errors.Is(err, ErrAppNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, NotFoundMessage
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken), errors.Is(err, ErrUserExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrUserInactive):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, ErrNoInstances):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, ErrorMessage
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}

// WriteDomainError writes err using the status chosen by ErrorStatus and returns that status.
func WriteDomainError(w http.ResponseWriter, err error) int {
	status, msg := ErrorStatus(err)
	_ = WriteError(w, status, HTTPStatusToCode(status), msg)
	return status
}
