package utils

import (
	"strings"
	"unicode"
)

// StringContainsIgnoreCase checks if string contains substring case-insensitively
func StringContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixIgnoreCase checks if string has prefix case-insensitively
func HasPrefixIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// EqualsIgnoreCase reports whether two strings match after case folding and
// surrounding whitespace removal.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// CollapseValue flattens a raw imported value into a single trimmed line:
// line breaks become spaces, runs of whitespace collapse, and surrounding
// whitespace is removed.
func CollapseValue(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether a string is empty or whitespace-only.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
