package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewInstanceID builds a registry instance id of the form host:app:port:suffix.
func NewInstanceID(host, app string, port int) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s:%s:%d:%s", host, strings.ToLower(app), port, suffix)
}

// RequestIDOrNew returns the given id when it is a non-blank value, a fresh uuid otherwise.
func RequestIDOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}
