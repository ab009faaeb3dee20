package textops

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// FormatDetector guesses the representation of input text from structural
// heuristics. Guesses are ranked by confidence; everything below 0.3 is
// discarded.
type FormatDetector struct{}

// NewFormatDetector creates a detector over the built-in heuristics.
func NewFormatDetector() *FormatDetector {
	return &FormatDetector{}
}

// Detect returns ranked guesses for the input's representation.
func (d *FormatDetector) Detect(ctx context.Context, input []byte) ([]DetectionResult, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	var results []DetectionResult
	results = append(results, d.detectHex(input)...)
	results = append(results, d.detectBinary(input)...)
	results = append(results, d.detectMorse(input)...)
	results = append(results, d.detectCompressed(input)...)
	results = append(results, d.detectDigest(input)...)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	filtered := results[:0]
	for _, r := range results {
		if r.Confidence >= 0.3 {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// SupportedEncodings lists the representations this detector knows.
func (d *FormatDetector) SupportedEncodings() []string {
	return []string{"hex", "binary", "morse", "deflate+base64", "sha256-digest"}
}

var (
	hexPattern    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	digestPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
	binaryPattern = regexp.MustCompile(`^[01]{8}( [01]{8})*$`)
	morsePattern  = regexp.MustCompile(`^[.\- ]+$`)
	base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
)

func (d *FormatDetector) detectHex(input []byte) []DetectionResult {
	text := strings.TrimSpace(string(input))
	if !hexPattern.MatchString(text) || len(text)%2 != 0 {
		return nil
	}
	if _, err := hex.DecodeString(text); err != nil {
		return nil
	}

	confidence := 0.8
	// All-decimal strings are as likely to be plain numbers.
	if !strings.ContainsAny(text, "abcdefABCDEF") {
		confidence = 0.45
	}
	return []DetectionResult{{
		Encoding:   "hex",
		Confidence: confidence,
		Reasoning:  "Even-length string of hexadecimal digits",
		Operation:  "hex_decode",
	}}
}

func (d *FormatDetector) detectBinary(input []byte) []DetectionResult {
	text := strings.TrimSpace(string(input))
	if !binaryPattern.MatchString(text) {
		return nil
	}

	confidence := 0.85
	if len(text) < 17 { // fewer than two tokens
		confidence = 0.6
	}
	return []DetectionResult{{
		Encoding:   "binary",
		Confidence: confidence,
		Reasoning:  "Space-separated groups of eight binary digits",
		Operation:  "binary_decode",
	}}
}

func (d *FormatDetector) detectMorse(input []byte) []DetectionResult {
	text := strings.TrimSpace(string(input))
	if text == "" || !morsePattern.MatchString(text) {
		return nil
	}

	tokens := strings.Split(text, " ")
	known := 0
	for _, token := range tokens {
		if _, ok := morseInverse[token]; ok {
			known++
		}
	}
	if known == 0 {
		return nil
	}

	ratio := float64(known) / float64(len(tokens))
	confidence := 0.5 + 0.4*ratio
	return []DetectionResult{{
		Encoding:   "morse",
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("%d of %d tokens are Morse symbols", known, len(tokens)),
		Operation:  "morse_decode",
	}}
}

func (d *FormatDetector) detectCompressed(input []byte) []DetectionResult {
	text := strings.TrimSpace(string(input))
	if len(text) < 4 || !base64Pattern.MatchString(text) {
		return nil
	}
	compressed, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil
	}

	// Only a successful DEFLATE pass distinguishes a compressed payload
	// from generic base64.
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()
	raw, err := io.ReadAll(reader)
	if err != nil || len(raw)%2 != 0 {
		return nil
	}

	return []DetectionResult{{
		Encoding:   "deflate+base64",
		Confidence: 0.9,
		Reasoning:  "Base64 payload decompresses as a DEFLATE stream of UTF-16 units",
		Operation:  "deflate_decompress",
	}}
}

func (d *FormatDetector) detectDigest(input []byte) []DetectionResult {
	text := strings.TrimSpace(string(input))
	if !digestPattern.MatchString(text) {
		return nil
	}
	return []DetectionResult{{
		Encoding:   "sha256-digest",
		Confidence: 0.6,
		Reasoning:  "Exactly 64 lowercase hex characters; digests are not invertible",
	}}
}

// DecodeResult is the outcome of one decode attempt made by DecodeAll.
type DecodeResult struct {
	Detection DetectionResult `json:"detection"`
	Decoded   []byte          `json:"decoded"`
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
}

// DecodeAll runs the detector and attempts every suggested decode,
// returning the ones that succeed.
func DecodeAll(ctx context.Context, input []byte) ([]DecodeResult, error) {
	detections, err := NewFormatDetector().Detect(ctx, input)
	if err != nil {
		return nil, err
	}

	results := make([]DecodeResult, 0, len(detections))
	for _, detection := range detections {
		if detection.Operation == "" {
			continue
		}
		op, ok := Lookup(detection.Operation)
		if !ok {
			continue
		}
		decoded, err := op.Execute(ctx, input, nil)
		if err != nil {
			continue
		}
		results = append(results, DecodeResult{
			Detection: detection,
			Decoded:   decoded,
			Success:   true,
		})
	}
	return results, nil
}
