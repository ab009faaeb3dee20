package textops

import (
	"context"
	"errors"
	"testing"
)

func TestHexOperations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "hello", "68656C6C6F"},
		{"empty", "", ""},
		{"unicode", "héllo", "68C3A96C6C6F"},
		{"digits", "123", "313233"},
	}

	ctx := context.Background()
	encoder, _ := Lookup("hex_encode")
	decoder, _ := Lookup("hex_decode")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := encoder.Execute(ctx, []byte(tt.input), nil)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if string(encoded) != tt.expected {
				t.Errorf("encode: expected %q, got %q", tt.expected, string(encoded))
			}

			decoded, err := decoder.Execute(ctx, encoded, nil)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if string(decoded) != tt.input {
				t.Errorf("decode: expected %q, got %q", tt.input, string(decoded))
			}
		})
	}
}

func TestHexDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-hex characters", "zz"},
		{"odd length", "68656"},
		{"mixed garbage", "68g5"},
	}

	ctx := context.Background()
	decoder, _ := Lookup("hex_decode")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Execute(ctx, []byte(tt.input), nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestBinaryOperations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two letters", "AB", "01000001 01000010"},
		{"single char", "a", "01100001"},
		{"empty", "", ""},
	}

	ctx := context.Background()
	encoder, _ := Lookup("binary_encode")
	decoder, _ := Lookup("binary_decode")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := encoder.Execute(ctx, []byte(tt.input), nil)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if string(encoded) != tt.expected {
				t.Errorf("encode: expected %q, got %q", tt.expected, string(encoded))
			}

			decoded, err := decoder.Execute(ctx, encoded, nil)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if string(decoded) != tt.input {
				t.Errorf("decode: expected %q, got %q", tt.input, string(decoded))
			}
		})
	}
}

func TestBinaryDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short token", "123"},
		{"non-binary digits", "01000002"},
		{"seven digits", "0100000"},
		{"nine digits", "010000011"},
		{"wide code point", "100010100010"},
	}

	ctx := context.Background()
	decoder, _ := Lookup("binary_decode")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Execute(ctx, []byte(tt.input), nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestROT13(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "hello", "uryyb"},
		{"uppercase", "HELLO", "URYYB"},
		{"mixed with punctuation", "Hello, World!", "Uryyb, Jbeyq!"},
		{"digits untouched", "abc123", "nop123"},
		{"empty", "", ""},
	}

	ctx := context.Background()
	op, _ := Lookup("rot13")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := op.Execute(ctx, []byte(tt.input), nil)
			if err != nil {
				t.Fatalf("rot13 failed: %v", err)
			}
			if string(out) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, string(out))
			}

			// Self-inverse: applying twice restores the input.
			back, err := op.Execute(ctx, out, nil)
			if err != nil {
				t.Fatalf("second rot13 failed: %v", err)
			}
			if string(back) != tt.input {
				t.Errorf("double rot13: expected %q, got %q", tt.input, string(back))
			}
		})
	}
}

func TestROT13SelfReverse(t *testing.T) {
	op, ok := Lookup("rot13")
	if !ok {
		t.Fatal("rot13 not registered")
	}
	reverse, ok := op.Reverse()
	if !ok {
		t.Fatal("rot13 should be reversible")
	}
	if reverse.Name() != "rot13" {
		t.Errorf("rot13 reverse should be itself, got %s", reverse.Name())
	}
}

func TestMorseOperations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		encoded  string
		restored string
	}{
		{"sos", "SOS", "... --- ...", "SOS"},
		{"lowercase uppercased", "abc", ".- -... -.-.", "ABC"},
		{"digits", "190", ".---- ----. -----", "190"},
		{"punctuation dropped", "hi!", ".... ..", "HI"},
		{"space collapses", "a b", ".- -...", "AB"},
		{"empty", "", "", ""},
	}

	ctx := context.Background()
	encoder, _ := Lookup("morse_encode")
	decoder, _ := Lookup("morse_decode")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := encoder.Execute(ctx, []byte(tt.input), nil)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if string(encoded) != tt.encoded {
				t.Errorf("encode: expected %q, got %q", tt.encoded, string(encoded))
			}

			decoded, err := decoder.Execute(ctx, encoded, nil)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if string(decoded) != tt.restored {
				t.Errorf("decode: expected %q, got %q", tt.restored, string(decoded))
			}
		})
	}
}

func TestMorseDecodeDropsUnknownTokens(t *testing.T) {
	ctx := context.Background()
	decoder, _ := Lookup("morse_decode")

	out, err := decoder.Execute(ctx, []byte(".- ...... -..."), nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(out) != "AB" {
		t.Errorf("expected %q, got %q", "AB", string(out))
	}
}

func TestMorseTableInverse(t *testing.T) {
	if len(morseAlphabet) != 36 {
		t.Fatalf("expected 36 symbols, got %d", len(morseAlphabet))
	}
	if len(morseInverse) != len(morseAlphabet) {
		t.Fatalf("inverse table size %d != alphabet size %d", len(morseInverse), len(morseAlphabet))
	}
	for symbol, token := range morseAlphabet {
		if got := morseInverse[token]; got != symbol {
			t.Errorf("inverse[%q] = %q, want %q", token, got, symbol)
		}
	}
}

func TestOperationReversibility(t *testing.T) {
	reversible := []string{
		"hex_encode",
		"binary_encode",
		"morse_encode",
		"rot13",
		"deflate_compress",
	}

	for _, name := range reversible {
		t.Run(name, func(t *testing.T) {
			op, ok := Lookup(name)
			if !ok {
				t.Fatalf("operation %s not found", name)
			}
			reverse, ok := op.Reverse()
			if !ok {
				t.Errorf("operation %s should be reversible", name)
			}
			if reverse == nil {
				t.Errorf("reverse operation for %s is nil", name)
			}
		})
	}
}

func TestDigestNotReversible(t *testing.T) {
	op, ok := Lookup("sha256_digest")
	if !ok {
		t.Fatal("sha256_digest not registered")
	}
	if _, ok := op.Reverse(); ok {
		t.Error("sha256_digest must not be reversible")
	}
}
