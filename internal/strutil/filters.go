package strutil

import (
	"strings"
	"unicode"
)

// RemoveDigits strips decimal digit runes.
func RemoveDigits(s string) string {
	return removeFunc(s, unicode.IsDigit)
}

// RemoveLetters strips letter runes.
func RemoveLetters(s string) string {
	return removeFunc(s, unicode.IsLetter)
}

// RemoveNonASCII strips every rune above U+007F.
func RemoveNonASCII(s string) string {
	return removeFunc(s, func(r rune) bool { return r > unicode.MaxASCII })
}

// RemoveSpecial keeps letters, digits, and whitespace and strips the rest.
func RemoveSpecial(s string) string {
	return removeFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	})
}

func removeFunc(s string, drop func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if drop(r) {
			return -1
		}
		return r
	}, s)
}
