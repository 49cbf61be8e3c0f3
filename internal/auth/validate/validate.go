// Package validate holds the structural rules applied to registration input.
// Every check is a pure function returning nil or a *errors.ValidationError.
package validate

import (
	"errors"
	"regexp"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"

	autherror "github.com/WilsonnnTan/auth-backend/internal/errors"
)

var (
	// Usernames start with a letter followed by 2-19 letters, digits or
	// underscores (3-20 characters total).
	usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{2,19}$`)

	// Basic local@domain.tld shape. Intentionally loose; deliverability is
	// not checked here.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)
)

func Username(s string) *autherror.ValidationError {
	err := validation.Validate(s,
		validation.Required,
		validation.Match(usernamePattern).Error("must start with a letter and contain 3-20 letters, digits or underscores"),
	)
	if err != nil {
		return &autherror.ValidationError{Field: "username", Reason: err.Error()}
	}

	return nil
}

func Email(s string) *autherror.ValidationError {
	err := validation.Validate(s,
		validation.Required,
		validation.Match(emailPattern).Error("must be a valid email address"),
	)
	if err != nil {
		return &autherror.ValidationError{Field: "email", Reason: err.Error()}
	}

	return nil
}

// PasswordStrength enforces length and character-class rules only. There is
// no dictionary or breach checking.
func PasswordStrength(s string) *autherror.ValidationError {
	err := validation.Validate(s,
		validation.Required,
		validation.Length(8, 0).Error("must be at least 8 characters"),
		validation.By(passwordComplexity),
	)
	if err != nil {
		return &autherror.ValidationError{Field: "password", Reason: err.Error()}
	}

	return nil
}

func passwordComplexity(value interface{}) error {
	s, _ := value.(string)

	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if !upper || !lower || !digit {
		return errors.New("must contain an uppercase letter, a lowercase letter and a digit")
	}

	return nil
}
