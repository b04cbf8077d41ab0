package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber normalizes a phone number for storage and comparison.
// All non-digit characters are removed and leading zeros are stripped, so
// "07894 561-231" and "7894561231" refer to the same customer.
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	return strings.TrimLeft(digits, "0")
}

// SamePhoneNumber reports whether two phone numbers are equivalent after
// normalization.
func SamePhoneNumber(a, b string) bool {
	return NormalizePhoneNumber(a) == NormalizePhoneNumber(b)
}

// ValidatePhoneNumber validates that a phone number contains at least seven
// digits once formatting characters are removed.
func ValidatePhoneNumber(phoneNumber string) bool {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	return len(digits) >= 7
}
