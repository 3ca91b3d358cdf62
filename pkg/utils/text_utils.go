package utils

import (
	"strconv"
	"strings"
)

// FormatToDigits renders n with exactly maxDigits characters: shorter numbers
// are left-padded with zeros, longer ones keep only their trailing digits.
//
// Examples:
//
//	FormatToDigits(3, 5)   = "005"
//	FormatToDigits(3, 99)  = "099"
//	FormatToDigits(2, 5)   = "05"
//	FormatToDigits(2, 232) = "32"
func FormatToDigits(maxDigits, n int) string {
	if maxDigits <= 0 {
		return ""
	}
	s := strconv.Itoa(n)
	if len(s) < maxDigits {
		return strings.Repeat("0", maxDigits-len(s)) + s
	}
	return s[len(s)-maxDigits:]
}
