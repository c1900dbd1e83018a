package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type Validator struct {
	v      *validator.Validate
	strict bool
}

// New builds the request validator. In prod mode a password must carry a
// lowercase letter, an uppercase letter and a digit; other modes enforce
// length only.
func New(mode string) *Validator {
	val := &Validator{
		v:      validator.New(),
		strict: mode == "prod",
	}

	// Registration only fails on an empty tag name.
	_ = val.v.RegisterValidation("uname", validUsername)
	_ = val.v.RegisterValidation("passwd", val.validPassword)

	return val
}

func validUsername(fl validator.FieldLevel) bool {
	u := fl.Field().String()
	return len(u) >= 3 && len(u) <= 50 && usernameRe.MatchString(u)
}

func (val *Validator) validPassword(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if len(p) < 8 || len(p) > 100 {
		return false
	}

	if !val.strict {
		return true
	}

	var lower, upper, digit bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	return lower && upper && digit
}

// Struct validates req and returns field-level messages, nil when valid.
func (val *Validator) Struct(req any) []string {
	err := val.v.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		details = append(details, fieldMessage(fe))
	}

	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "uname":
		return fmt.Sprintf("%s must be 3-50 characters of a-z, A-Z, 0-9, _ or -", fe.Field())
	case "passwd":
		return fmt.Sprintf("%s does not satisfy the password policy", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
