package utils

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

func IsValidEmail(email string) bool {
	if IsNullOrEmpty(email) {
		return false
	}
	return emailPattern.MatchString(email)
}

func IsValidPhoneNumber(phoneNumber string) bool {
	if IsNullOrEmpty(phoneNumber) {
		return false
	}
	return phonePattern.MatchString(phoneNumber)
}

// IsValidUsername accepts 3-20 letters, digits or underscores.
func IsValidUsername(username string) bool {
	if IsNullOrEmpty(username) {
		return false
	}
	return usernamePattern.MatchString(username)
}

// IsNullOrEmpty reports whether s is empty or whitespace only.
func IsNullOrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsPositive reports whether n is a number greater than zero. Nil values,
// nil pointers and non-numeric types are not positive.
func IsPositive(n any) bool {
	if n == nil {
		return false
	}
	if num, ok := n.(json.Number); ok {
		f, err := num.Float64()
		return err == nil && f > 0
	}

	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() > 0
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		return IsPositive(rv.Elem().Interface())
	default:
		return false
	}
}
