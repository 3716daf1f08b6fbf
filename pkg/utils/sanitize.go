package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims the input and drops control characters. Values are
// stored raw; HTML escaping happens at render time.
func SanitizeString(input string) string {
	return removeControlChars(strings.TrimSpace(input))
}

// SanitizeEmail strips markup, then trims and lower-cases the address.
func SanitizeEmail(email string) string {
	email = stripHTML(email)
	email = strings.ToLower(strings.TrimSpace(email))

	return removeControlChars(email)
}

// SanitizeText sanitizes multi-line text input
func SanitizeText(input string) string {
	var result strings.Builder
	for _, r := range strings.TrimSpace(input) {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

func stripHTML(input string) string {
	return htmlTagPattern.ReplaceAllString(input, "")
}

func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || r == ' ' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
