package metrics

import (
	"strings"
	"unicode"
)

// frequencyTable counts occurrences while remembering the order in which
// keys were first seen. Ties between equal counts are broken by that
// order, never by map iteration.
type frequencyTable[K comparable] struct {
	counts map[K]int
	order  []K
}

func newFrequencyTable[K comparable]() *frequencyTable[K] {
	return &frequencyTable[K]{counts: make(map[K]int)}
}

func (t *frequencyTable[K]) add(key K) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// extreme returns the first-seen key with the maximal count when most is
// true, or the minimal count otherwise. ok is false for an empty table.
func (t *frequencyTable[K]) extreme(most bool) (key K, ok bool) {
	if len(t.order) == 0 {
		return key, false
	}
	best := t.order[0]
	for _, candidate := range t.order[1:] {
		if most && t.counts[candidate] > t.counts[best] {
			best = candidate
		}
		if !most && t.counts[candidate] < t.counts[best] {
			best = candidate
		}
	}
	return best, true
}

// characterTable groups the letter and digit code points of s.
func characterTable(s string) *frequencyTable[rune] {
	table := newFrequencyTable[rune]()
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			table.add(r)
		}
	}
	return table
}

// wordTable groups case-sensitive word tokens of s. Delimiters are space,
// tab, newline, carriage return, '.', ',', '!', and '?'.
func wordTable(s string) *frequencyTable[string] {
	table := newFrequencyTable[string]()
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '.', ',', '!', '?':
			return true
		}
		return false
	})
	for _, token := range tokens {
		table.add(token)
	}
	return table
}

// MostFrequentCharacter returns the letter or digit occurring most often.
// Ties go to the character seen first. Input with no letters or digits
// yields the empty string.
func MostFrequentCharacter(s string) string {
	if r, ok := characterTable(s).extreme(true); ok {
		return string(r)
	}
	return ""
}

// LeastFrequentCharacter returns the letter or digit occurring least often,
// with the same tie-break and empty-input behavior as
// MostFrequentCharacter.
func LeastFrequentCharacter(s string) string {
	if r, ok := characterTable(s).extreme(false); ok {
		return string(r)
	}
	return ""
}

// MostFrequentWord returns the word token occurring most often,
// case-sensitively. Ties go to the token seen first; input with no tokens
// yields the empty string.
func MostFrequentWord(s string) string {
	if w, ok := wordTable(s).extreme(true); ok {
		return w
	}
	return ""
}

// LeastFrequentWord returns the word token occurring least often, with the
// same tie-break and empty-input behavior as MostFrequentWord.
func LeastFrequentWord(s string) string {
	if w, ok := wordTable(s).extreme(false); ok {
		return w
	}
	return ""
}
