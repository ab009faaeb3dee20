package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Characters returns the number of Unicode code points in s. For the count
// of user-perceived characters see Length.
func Characters(s string) int {
	return utf8.RuneCountInString(s)
}

// Words counts non-empty segments delimited by runs of space, tab, newline,
// or carriage return.
func Words(s string) int {
	return len(strings.FieldsFunc(s, isWordDelimiter))
}

func isWordDelimiter(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Sentences counts segments delimited by '.', '!', or '?', each treated as
// an independent single-character delimiter. Segments containing only
// whitespace are discarded, so doubled punctuation ("Wait... really?!")
// still yields one sentence per non-empty run of text.
func Sentences(s string) int {
	count := 0
	for _, segment := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

// Paragraphs counts paragraphs with a scanning rule rather than a literal
// split: a paragraph begins at the start of the text or after two or more
// consecutive line-break units, and only counts once a non-whitespace rune
// follows. A \r\n pair is one unit; \r, \n, NEL (U+0085), the line
// separator (U+2028), and the paragraph separator (U+2029) each count as
// one unit. Spaces and tabs between breaks do not interrupt the run, so
// blank-but-indented lines still separate paragraphs. Leading whitespace
// before the first paragraph is ignored.
func Paragraphs(s string) int {
	count := 0
	breaks := 2 // start of text opens a paragraph
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			breaks++
		case r == '\n', r == '\u0085', r == '\u2028', r == '\u2029':
			breaks++
		case unicode.IsSpace(r):
			// Horizontal whitespace neither extends nor resets the run.
		default:
			if breaks >= 2 {
				count++
			}
			breaks = 0
		}
	}
	return count
}

// vowels is the fixed classification set; 'y' is deliberately excluded.
const vowels = "aeiouAEIOU"

// Vowels counts runes in the fixed set aeiouAEIOU.
func Vowels(s string) int {
	count := 0
	for _, r := range s {
		if strings.ContainsRune(vowels, r) {
			count++
		}
	}
	return count
}

// Consonants counts letters that are not in the vowel set.
func Consonants(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) && !strings.ContainsRune(vowels, r) {
			count++
		}
	}
	return count
}

// Digits counts decimal digit runes.
func Digits(s string) int {
	return countFunc(s, unicode.IsDigit)
}

// Uppercase counts upper-case letters.
func Uppercase(s string) int {
	return countFunc(s, unicode.IsUpper)
}

// Lowercase counts lower-case letters.
func Lowercase(s string) int {
	return countFunc(s, unicode.IsLower)
}

// Punctuation counts punctuation runes per the Unicode character database.
func Punctuation(s string) int {
	return countFunc(s, unicode.IsPunct)
}

// Whitespace counts whitespace runes per the Unicode character database.
func Whitespace(s string) int {
	return countFunc(s, unicode.IsSpace)
}

func countFunc(s string, pred func(rune) bool) int {
	count := 0
	for _, r := range s {
		if pred(r) {
			count++
		}
	}
	return count
}
