package metrics

import "testing"

func TestCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"multibyte", "héllo", 5},
		{"cjk", "世界", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Characters(tt.input); got != tt.expected {
				t.Errorf("Characters(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"spaces only", "  ", 0},
		{"double space", "a b  c", 3},
		{"mixed delimiters", "one\ttwo\nthree\rfour", 4},
		{"leading and trailing", "  padded  ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Words(tt.input); got != tt.expected {
				t.Errorf("Words(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"single", "Hello world.", 1},
		{"three kinds", "One. Two! Three?", 3},
		{"no terminator", "trailing text", 1},
		{"doubled punctuation", "Wait... really?!", 2},
		{"punctuation only", "...", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sentences(tt.input); got != tt.expected {
				t.Errorf("Sentences(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", "\n\n   \n", 0},
		{"blank line", "a\n\nb", 2},
		{"single newline", "a\nb", 1},
		{"leading breaks", "\n\n   a", 1},
		{"crlf pairs", "a\r\n\r\nb", 2},
		{"single crlf", "a\r\nb", 1},
		{"mixed endings", "a\r\n\nb\r\rc", 3},
		{"indented blank line", "a\n  \nb", 2},
		{"paragraph separators", "a\u2029\u2029b", 2},
		{"three breaks still one boundary", "a\n\n\nb", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Paragraphs(tt.input); got != tt.expected {
				t.Errorf("Paragraphs(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClassifiedCounts(t *testing.T) {
	const input = "Hello, World! 42\n"

	if got := Vowels(input); got != 3 {
		t.Errorf("Vowels = %d, want 3", got)
	}
	if got := Consonants(input); got != 7 {
		t.Errorf("Consonants = %d, want 7", got)
	}
	if got := Digits(input); got != 2 {
		t.Errorf("Digits = %d, want 2", got)
	}
	if got := Uppercase(input); got != 2 {
		t.Errorf("Uppercase = %d, want 2", got)
	}
	if got := Lowercase(input); got != 8 {
		t.Errorf("Lowercase = %d, want 8", got)
	}
	if got := Punctuation(input); got != 2 {
		t.Errorf("Punctuation = %d, want 2", got)
	}
	if got := Whitespace(input); got != 3 {
		t.Errorf("Whitespace = %d, want 3", got)
	}
}

func TestVowelSetIsFixed(t *testing.T) {
	// 'y' and accented vowels are not in the classification set.
	if got := Vowels("yyy"); got != 0 {
		t.Errorf("Vowels(\"yyy\") = %d, want 0", got)
	}
	if got := Vowels("é"); got != 0 {
		t.Errorf("Vowels(\"é\") = %d, want 0", got)
	}
	if got := Vowels("AEIOUaeiou"); got != 10 {
		t.Errorf("Vowels(all) = %d, want 10", got)
	}
}

func TestCountsOnEmptyInput(t *testing.T) {
	counters := map[string]func(string) int{
		"Characters":  Characters,
		"Words":       Words,
		"Sentences":   Sentences,
		"Paragraphs":  Paragraphs,
		"Vowels":      Vowels,
		"Consonants":  Consonants,
		"Digits":      Digits,
		"Uppercase":   Uppercase,
		"Lowercase":   Lowercase,
		"Punctuation": Punctuation,
		"Whitespace":  Whitespace,
		"Length":      Length,
	}
	for name, fn := range counters {
		if got := fn(""); got != 0 {
			t.Errorf("%s(\"\") = %d, want 0", name, got)
		}
	}
}
