// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	strictPhoneRe  = regexp.MustCompile(`^[0-9]{10}$`)
	lenientPhoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// ValidatePhone checks a phone number after stripping common separators.
// Strict mode requires exactly 10 digits; lenient mode accepts any
// international format.
func ValidatePhone(phone string, strict bool) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if strict {
		return strictPhoneRe.MatchString(cleaned)
	}
	return lenientPhoneRe.MatchString(cleaned)
}

// DigitsOnly strips every non-digit character, for building wa.me links.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
