package domain

import (
	"strings"
	"unicode"
)

// specialChars is the fixed set a password must draw at least one rune from.
const specialChars = "!@#$%^&*()_+-=[]{}|;:,<>?"

// ValidatePassword checks a password against the strength rules, in order,
// stopping at the first violation. It returns whether the password is
// acceptable and a human-readable reason. Classification is rune-based, so
// non-ASCII letters count as uppercase/lowercase by their unicode category.
func ValidatePassword(password string) (bool, string) {
	runes := []rune(password)

	if len(runes) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !containsFunc(runes, unicode.IsUpper) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !containsFunc(runes, unicode.IsLower) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !containsFunc(runes, unicode.IsDigit) {
		return false, "Password must contain at least one number"
	}
	if !containsFunc(runes, func(r rune) bool { return strings.ContainsRune(specialChars, r) }) {
		return false, "Password must contain at least one special character"
	}

	return true, "Password is valid"
}

func containsFunc(runes []rune, match func(rune) bool) bool {
	for _, r := range runes {
		if match(r) {
			return true
		}
	}
	return false
}
