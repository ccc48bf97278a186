package utils

import "unicode/utf8"

// TruncateString shortens s for log lines. If s is longer than maxLen bytes it
// is cut back to the last whole rune that fits and "..." is appended.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
