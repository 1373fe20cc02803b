package utils

import "strings"

// FormatPhoneNumber strips everything that is not a digit. Bot identifiers
// arrive as phone numbers in arbitrary formats.
func FormatPhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
