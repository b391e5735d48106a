package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// ContainsString reports whether id is present in list.
//
// Parameters:
//   - list: slice to search
//   - id: value to look for
//
// Returns:
//   - true if the value is found, false otherwise
func ContainsString(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// QueryInt reads an integer query parameter.
//
// Parameters:
//   - r: incoming request
//   - key: query parameter name
//   - def: value returned when the parameter is absent or blank
//
// Returns:
//   - parsed value, or a *BadRequestError when the parameter is not an integer
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewBadRequest("query parameter '%s' must be an integer", key)
	}
	return v, nil
}

// QueryBool reads an optional boolean query parameter; nil means absent.
func QueryBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, NewBadRequest("query parameter '%s' must be a boolean", key)
	}
	return &v, nil
}
