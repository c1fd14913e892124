// ABOUTME: Field validation and normalization for credential submission
// ABOUTME: Runs locally before any network call, field-scoped messages

package loginform

import (
	"errors"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail requires a non-empty local@domain.tld shape
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("The field is required")
	}
	if !emailPattern.MatchString(s) {
		return errors.New("Invalid email address")
	}
	return nil
}

// ValidatePassword requires at least 6 characters
func ValidatePassword(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("The field is required")
	}
	if len(s) < 6 {
		return errors.New("Min length is 6")
	}
	return nil
}

// ValidateUsername requires 3 to 9 characters
func ValidateUsername(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("The field is required")
	}
	if len(s) < 3 {
		return errors.New("Min length is 3")
	}
	if len(s) > 9 {
		return errors.New("Max length is 9")
	}
	return nil
}

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePassword trims surrounding whitespace, preserving case
func NormalizePassword(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeUsername trims and lowercases a username
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
