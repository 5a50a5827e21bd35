package utils

import (
	"strings"
)

const cpfMask = "999.999.999-99"

// OnlyDigits strips every non-digit character
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanCPF returns the CPF digits without punctuation
func CleanCPF(cpf string) string {
	return OnlyDigits(cpf)
}

// FormatCPF applies the 000.000.000-00 mask to the digits of cpf. Partial
// input is masked progressively; input with more than 11 digits is returned
// unchanged so it cannot be mistaken for a complete CPF.
func FormatCPF(cpf string) string {
	digits := OnlyDigits(cpf)
	if len(digits) > 11 {
		return cpf
	}
	return applyMask(cpfMask, digits)
}

// IsMaskedCPF reports whether s is exactly in the 000.000.000-00 form
func IsMaskedCPF(s string) bool {
	return matchesMask(cpfMask, s)
}

// ValidateCPF validates a CPF number
// It checks if the CPF has 11 digits and validates the check digits
func ValidateCPF(cpf string) bool {
	cpf = OnlyDigits(cpf)

	if len(cpf) != 11 {
		return false
	}

	// Repeated digits pass the checksum but are never issued
	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfCheckDigit(cpf[:9]) == cpf[9] && cpfCheckDigit(cpf[:10]) == cpf[10]
}

// cpfCheckDigit computes the mod-11 check digit for the given prefix
func cpfCheckDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + 11 - remainder)
}
