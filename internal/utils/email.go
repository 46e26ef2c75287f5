package utils

import "strings"

// NormalizeEmail trims whitespace and lowercases. Every email entering the
// system passes through here, so uniqueness and token subjects compare on
// the normalized form regardless of storage collation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
