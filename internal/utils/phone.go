package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CountryCode is the South Sudan dialing prefix all stored numbers carry.
const CountryCode = "211"

// mobilePattern matches a national significant number: nine digits
// starting with 9 (the mobile range).
var mobilePattern = regexp.MustCompile(`^9\d{8}$`)

// ValidatePhone validates a phone number and returns it in canonical
// +211XXXXXXXXX form. It accepts local (09...), bare (9...), and
// international (+211..., 211...) notations.
func ValidatePhone(phone string) (bool, string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if strings.HasPrefix(stripped, CountryCode) {
		stripped = stripped[len(CountryCode):]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid phone number format")
	}

	return true, "+" + CountryCode + stripped, nil
}

// PlausiblePhone is the looser shape check used while a signup profile is
// still being edited: enough digits to be a dialable number.
func PlausiblePhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}
