package entity

import "strings"

const cpfLength = 11

// cpfBlacklist holds digit strings that pass the check-digit arithmetic but are
// never issued.
var cpfBlacklist = map[string]struct{}{
	"00000000000": {},
	"11111111111": {},
	"22222222222": {},
	"33333333333": {},
	"44444444444": {},
	"55555555555": {},
	"66666666666": {},
	"77777777777": {},
	"88888888888": {},
	"99999999999": {},
	"12345678909": {},
}

// IsValidCPF reports whether cpf is a valid Brazilian individual taxpayer number.
// Formatting characters are ignored, so "111.444.777-35" and "11144477735" are
// treated alike.
func IsValidCPF(cpf string) bool {
	digits := stripNonDigits(cpf)
	if len(digits) != cpfLength {
		return false
	}

	if _, blacklisted := cpfBlacklist[digits]; blacklisted {
		return false
	}

	first := cpfVerifierDigit(digits[:9])
	second := cpfVerifierDigit(digits[:9] + string(first))

	return digits[9] == first && digits[10] == second
}

// cpfVerifierDigit computes the mod-11 check digit for base, weighting digits
// from len(base)+1 down to 2.
func cpfVerifierDigit(base string) byte {
	sum := 0
	weight := len(base) + 1
	for i := range len(base) {
		sum += int(base[i]-'0') * weight
		weight--
	}

	rest := sum % 11
	if rest < 2 {
		return '0'
	}

	return byte('0' + 11 - rest)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := range len(s) {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
