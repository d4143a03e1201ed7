package utils

import "strings"

// MaskSecret keeps the first and last two characters of long secrets, so two
// configured values can be told apart in logs without revealing them
func MaskSecret(s string) string {
	if len(s) < 8 {
		return strings.Repeat("*", 5)
	}
	return s[:2] + strings.Repeat("*", 5) + s[len(s)-2:]
}
