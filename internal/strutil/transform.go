package strutil

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// SwapCase inverts the case of every letter.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// AlternateCase upper-cases every other letter, starting upper. Only
// letters advance the alternation; other runes pass through.
func AlternateCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if unicode.IsLetter(r) {
			if upper {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			upper = !upper
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Reverse reverses a string by extended grapheme cluster, so combining
// sequences and emoji survive intact.
func Reverse(s string) string {
	clusters := make([]string, 0, len(s))
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}

// Shuffle returns a permutation of the code points of s drawn from rng.
// The random source is explicit so callers decide seeding and tests stay
// deterministic.
func Shuffle(rng *rand.Rand, s string) string {
	runes := []rune(s)
	rng.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}
