package utils

import (
	"strings"
	"unicode"
)

// ExtractFirstName extracts the first name from a full name
func ExtractFirstName(fullName string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(fullName), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
