package validators

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone keeps the digits of a phone number. Customers are
// keyed on this value, so "(715) 699-1258" and "715.699.1258" match.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(strings.TrimSpace(phone), "")
}

func IsPhoneValid(phone string) bool {
	n := len(NormalizePhone(phone))
	return n >= 7 && n <= 15
}

// ToE164 formats a number for SMS delivery. Nine or ten digit numbers
// are taken as North American and get the country code 1.
func ToE164(phone string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	if len(digits) == 9 || len(digits) == 10 {
		digits = "1" + digits
	}
	return "+" + digits
}
