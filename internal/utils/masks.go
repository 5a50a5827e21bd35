package utils

import "strings"

const dateMask = "99/99/9999"

// FormatBirthDate applies the 00/00/0000 mask to the digits of date. Input
// with more than 8 digits is returned unchanged.
func FormatBirthDate(date string) string {
	digits := OnlyDigits(date)
	if len(digits) > 8 {
		return date
	}
	return applyMask(dateMask, digits)
}

// IsMaskedDate reports whether s is exactly in the 00/00/0000 form. The
// calendar value is not checked.
func IsMaskedDate(s string) bool {
	return matchesMask(dateMask, s)
}

// applyMask fills the 9 placeholders of mask with digits, stopping at the
// last digit so partial input keeps no trailing punctuation
func applyMask(mask, digits string) string {
	if digits == "" {
		return ""
	}
	var b strings.Builder
	next := 0
	for i := 0; i < len(mask) && next < len(digits); i++ {
		if mask[i] == '9' {
			b.WriteByte(digits[next])
			next++
			continue
		}
		b.WriteByte(mask[i])
	}
	return b.String()
}

func matchesMask(mask, s string) bool {
	if len(s) != len(mask) {
		return false
	}
	for i := 0; i < len(mask); i++ {
		if mask[i] == '9' {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
			continue
		}
		if s[i] != mask[i] {
			return false
		}
	}
	return true
}
