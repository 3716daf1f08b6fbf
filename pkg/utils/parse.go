package utils

import (
	"strconv"
	"strings"
)

// ParseLeadingInt reads the integer prefix of s ("12000/kg" -> 12000).
// Strings without a numeric prefix, or out of range, yield 0.
func ParseLeadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
