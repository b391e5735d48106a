package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInstanceNotFound   = errors.New("instance not found")
	ErrAppNotFound        = errors.New("application not found")
	ErrNoInstances        = errors.New("no available instances")
	ErrInternal           = errors.New("internal error")
)

// BadRequestError reports a problem with client input. It matches
// ErrInvalidArgument under errors.Is.
type BadRequestError struct {
	Message string
}

func NewBadRequest(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func (e *BadRequestError) Is(target error) bool {
	return target == ErrInvalidArgument
}
