package validation

import (
	"strings"
	"testing"

	"github.com/avolkov/taskgate/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestValidator_Username(t *testing.T) {
	v := New("dev")

	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "Valid", username: "alice", valid: true},
		{name: "ValidWithCharset", username: "a-l_ice42", valid: true},
		{name: "MinLength", username: "abc", valid: true},
		{name: "MaxLength", username: strings.Repeat("a", 50), valid: true},
		{name: "TooShort", username: "ab", valid: false},
		{name: "TooLong", username: strings.Repeat("a", 51), valid: false},
		{name: "Missing", username: "", valid: false},
		{name: "BadCharset", username: "alice!", valid: false},
		{name: "Spaces", username: "al ice", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := v.Struct(
				&dto.RegisterRequest{
					Username: tt.username,
					Password: "validpassword123",
				},
			)

			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidator_Password(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		password string
		valid    bool
	}{
		{name: "DevLengthOnly", mode: "dev", password: "lowercaseonly", valid: true},
		{name: "DevTooShort", mode: "dev", password: "short", valid: false},
		{name: "DevTooLong", mode: "dev", password: strings.Repeat("a", 101), valid: false},
		{name: "DevMissing", mode: "dev", password: "", valid: false},
		{name: "ProdStrict", mode: "prod", password: "Validpassword123", valid: true},
		{name: "ProdNoUpper", mode: "prod", password: "validpassword123", valid: false},
		{name: "ProdNoLower", mode: "prod", password: "VALIDPASSWORD123", valid: false},
		{name: "ProdNoDigit", mode: "prod", password: "Validpassword", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := New(tt.mode).Struct(
				&dto.RegisterRequest{
					Username: "alice",
					Password: tt.password,
				},
			)

			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidator_FieldMessages(t *testing.T) {
	v := New("dev")

	details := v.Struct(&dto.RegisterRequest{})
	assert.Len(t, details, 2)
	assert.Contains(t, details[0], "required")
	assert.Contains(t, details[1], "required")

	details = v.Struct(
		&dto.CreateTaskRequest{
			Title: strings.Repeat("a", 201),
		},
	)
	assert.Len(t, details, 1)
	assert.Contains(t, details[0], "at most 200")
}
