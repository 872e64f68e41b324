package utils

import "strings"

// phoneSuffixLength is how many trailing digits are compared when
// matching a supplied phone number against the registered one.
const phoneSuffixLength = 8

// phoneMinMatchDigits guards against false positives on very short
// input: a suffix match shorter than this never counts.
const phoneMinMatchDigits = 6

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneSuffixMatches compares the last 8 digits of the supplied and
// stored phone numbers after normalization. Both suffixes must be
// equal and at least 6 digits long.
func PhoneSuffixMatches(supplied, stored string) bool {
	in := NormalizePhone(supplied)
	reg := NormalizePhone(stored)

	if len(in) > phoneSuffixLength {
		in = in[len(in)-phoneSuffixLength:]
	}
	if len(reg) > phoneSuffixLength {
		reg = reg[len(reg)-phoneSuffixLength:]
	}

	return in == reg && len(in) >= phoneMinMatchDigits
}
