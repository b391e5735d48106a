package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"short domain", "a@b.co", true},
		{"plus and dots", "john.doe+split@mail.example.org", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"no at", "john.example.com", false},
		{"one letter tld", "a@b.c", false},
		{"numeric tld", "a@b.12", false},
		{"space inside", "jo hn@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"plain digits", "5551234", true},
		{"international", "+1 555 1234567", true},
		{"parentheses", "(555) 123-4567", true},
		{"dots", "555.123.4567", true},
		{"empty", "", false},
		{"letters", "555-CALL-NOW", false},
		{"too many digits", "12345678901234567890", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidPhoneNumber(tt.phone))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"too short", "ab", false},
		{"minimum length", "abc", true},
		{"underscore and digits", "john_doe_42", true},
		{"twenty chars", "abcdefghijklmnopqrst", true},
		{"twenty one chars", "abcdefghijklmnopqrstu", false},
		{"dash", "john-doe", false},
		{"blank", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidUsername(tt.username))
		})
	}
}

func TestIsNullOrEmpty(t *testing.T) {
	require.True(t, IsNullOrEmpty(""))
	require.True(t, IsNullOrEmpty(" \t\n"))
	require.False(t, IsNullOrEmpty("x"))
	require.False(t, IsNullOrEmpty("  x  "))
}

func TestIsPositive(t *testing.T) {
	var nilInt *int
	two := 2
	negative := -3.5

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"negative int", -1, false},
		{"zero", 0, false},
		{"positive int64", int64(7), true},
		{"positive uint", uint8(1), true},
		{"zero uint", uint(0), false},
		{"positive float", 2.5, true},
		{"small float", float32(0.001), true},
		{"negative float", -0.5, false},
		{"json number", json.Number("3.2"), true},
		{"bad json number", json.Number("abc"), false},
		{"nil pointer", nilInt, false},
		{"pointer to positive", &two, true},
		{"pointer to negative", &negative, false},
		{"string", "5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsPositive(tt.in))
		})
	}
}

func TestValidate_CustomTags(t *testing.T) {
	type request struct {
		Username string `validate:"required,username"`
		Email    string `validate:"required,strict_email"`
		Phone    string `validate:"omitempty,phone"`
	}

	require.NoError(t, Validate(request{Username: "alice", Email: "alice@example.com"}))
	require.NoError(t, Validate(request{Username: "alice", Email: "alice@example.com", Phone: "+44 20 79460000"}))

	err := Validate(request{Username: "al", Email: "alice@example.com"})
	require.Error(t, err)
	require.Equal(t, "field 'Username' failed on 'username'", ValidationMessage(err))

	err = Validate(request{Username: "alice", Email: "alice@example"})
	require.Error(t, err)
	require.Contains(t, ValidationMessage(err), "strict_email")

	err = Validate(request{Username: "alice", Email: "alice@example.com", Phone: "call me"})
	require.Error(t, err)
	require.Contains(t, ValidationMessage(err), "phone")
}
