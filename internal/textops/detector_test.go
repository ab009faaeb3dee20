package textops

import (
	"context"
	"strings"
	"testing"
)

func TestDetectHex(t *testing.T) {
	ctx := context.Background()
	detector := NewFormatDetector()

	results, err := detector.Detect(ctx, []byte("48656C6C6F"))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !hasEncoding(results, "hex") {
		t.Errorf("expected hex detection in %v", results)
	}
}

func TestDetectBinary(t *testing.T) {
	ctx := context.Background()
	detector := NewFormatDetector()

	results, err := detector.Detect(ctx, []byte("01000001 01000010 01000011"))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !hasEncoding(results, "binary") {
		t.Errorf("expected binary detection in %v", results)
	}
}

func TestDetectMorse(t *testing.T) {
	ctx := context.Background()
	detector := NewFormatDetector()

	results, err := detector.Detect(ctx, []byte("... --- ..."))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !hasEncoding(results, "morse") {
		t.Errorf("expected morse detection in %v", results)
	}
}

func TestDetectCompressedPayload(t *testing.T) {
	ctx := context.Background()
	compress, _ := Lookup("deflate_compress")
	payload, err := compress.Execute(ctx, []byte("a payload long enough to detect"), nil)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}

	results, err := NewFormatDetector().Detect(ctx, payload)
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !hasEncoding(results, "deflate+base64") {
		t.Errorf("expected deflate+base64 detection in %v", results)
	}
}

func TestDetectDigest(t *testing.T) {
	ctx := context.Background()
	digest := strings.Repeat("ab", 32)

	results, err := NewFormatDetector().Detect(ctx, []byte(digest))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !hasEncoding(results, "sha256-digest") {
		t.Errorf("expected sha256-digest detection in %v", results)
	}
	for _, r := range results {
		if r.Encoding == "sha256-digest" && r.Operation != "" {
			t.Error("digest detection must not suggest a decode operation")
		}
	}
}

func TestDetectEmptyInput(t *testing.T) {
	if _, err := NewFormatDetector().Detect(context.Background(), nil); err == nil {
		t.Error("empty input should error")
	}
}

func TestDetectRankedByConfidence(t *testing.T) {
	results, err := NewFormatDetector().Detect(context.Background(), []byte("01000001 01000010"))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Confidence < results[i].Confidence {
			t.Errorf("results not sorted by confidence: %v", results)
		}
	}
	for _, r := range results {
		if r.Confidence < 0.3 {
			t.Errorf("low-confidence result not filtered: %+v", r)
		}
	}
}

func TestDecodeAll(t *testing.T) {
	ctx := context.Background()
	encoder, _ := Lookup("hex_encode")
	encoded, err := encoder.Execute(ctx, []byte("roundtrip"), nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	results, err := DecodeAll(ctx, encoded)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}

	found := false
	for _, r := range results {
		if r.Detection.Encoding == "hex" && string(r.Decoded) == "roundtrip" {
			found = true
		}
		if !r.Success {
			t.Errorf("DecodeAll returned failed result: %+v", r)
		}
	}
	if !found {
		t.Errorf("expected hex decode of %q in %v", encoded, results)
	}
}

func hasEncoding(results []DetectionResult, encoding string) bool {
	for _, r := range results {
		if r.Encoding == encoding {
			return true
		}
	}
	return false
}
