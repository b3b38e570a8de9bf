// Package validation implements the format checks applied to credentials
// at registration time: the email grammar and the password strength policy.
package validation

import (
	"errors"
	"regexp"
)

var (
	// ErrPasswordTooShort is returned for passwords shorter than 8 characters.
	// The message is stable; callers match on it.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrPasswordTooWeak is returned for passwords missing an uppercase
	// letter, a lowercase letter, or a digit.
	ErrPasswordTooWeak = errors.New("password must contain uppercase, lowercase, and numeric characters")
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// IsValidEmail reports whether email has the form local@domain.tld with an
// alphabetic TLD of at least two letters. No DNS or deliverability check.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidatePassword checks the password strength policy: at least 8
// characters, containing an uppercase letter, a lowercase letter, and a
// digit. Special characters are not required.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	if !hasUpper.MatchString(password) || !hasLower.MatchString(password) || !hasNumber.MatchString(password) {
		return ErrPasswordTooWeak
	}

	return nil
}
