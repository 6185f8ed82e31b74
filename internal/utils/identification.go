package utils

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// ExtractDigits strips all non-digit characters. Used both as a typing
// filter and to canonicalize identifiers before validation and queries.
func ExtractDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateIdentification reports whether s contains a plausible Costa Rican
// identification number: 9 digits for a physical person, 10 for a legal
// entity, 11 for a DIMEX foreign-resident id. Formatting characters are
// ignored.
func ValidateIdentification(s string) bool {
	digits := ExtractDigits(s)
	switch len(digits) {
	case 9, 10, 11:
		return true
	default:
		return false
	}
}
