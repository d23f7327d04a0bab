package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// IsValidEmail is a conservative syntactic gate, not a deliverability
// check: one @, no whitespace, at least one dot after the @.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// IsValidPhone requires exactly 10 digits once formatting characters
// are stripped.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	digits := nonDigit.ReplaceAllString(phone, "")
	return len(digits) == 10
}

// NormalizeEmail returns the canonical form of an email address used
// for deduplication. Gmail addresses fold plus-aliases and dots in the
// local part; all other domains are only lowercased and trimmed.
// Returns "" for empty or invalid input.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if !IsValidEmail(email) {
		return ""
	}

	local, domain, _ := strings.Cut(email, "@")
	if domain == "gmail.com" || domain == "googlemail.com" {
		local, _, _ = strings.Cut(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		return fmt.Sprintf("%s@%s", local, domain)
	}

	return email
}
