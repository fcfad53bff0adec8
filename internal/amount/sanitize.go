package amount

import "strings"

// Sanitize drops every character that is not an ASCII digit, '.' or ','.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if isAllowed(r) {
			return r
		}
		return -1
	}, text)
}

func isAllowed(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == ','
}

// clean reports whether s only holds characters Sanitize keeps.
func clean(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool { return !isAllowed(r) })
}
