package utils

import (
	"fmt"
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// CPFDigits strips everything but digits from a national id
func CPFDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// MaskCPF formats 11 bare digits into the canonical XXX.XXX.XXX-XX form
func MaskCPF(digits string) string {
	if len(digits) != 11 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[:3], digits[3:6], digits[6:9], digits[9:])
}

// NormalizeCPF validates a national id and returns it in canonical masked
// form along with its bare digits. The id must contain exactly 11 digits.
func NormalizeCPF(raw string) (masked string, digits string, err error) {
	digits = CPFDigits(raw)
	if len(digits) != 11 {
		return "", "", fmt.Errorf("national id must contain exactly 11 digits")
	}
	return MaskCPF(digits), digits, nil
}
