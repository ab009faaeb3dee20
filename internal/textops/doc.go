// Package textops provides stateless text transformation operations:
// reversible codecs, a compression payload format, digests, and the
// registry, pipeline, and detection machinery to compose them.
//
// # Quick Start
//
// Look up an operation and run it:
//
//	op, _ := textops.Lookup("hex_encode")
//	out, _ := op.Execute(context.Background(), []byte("Hello"), nil)
//	// out: []byte("48656C6C6F")
//
// # Round Trips
//
// Each codec pairs an encode with an exact decode. Reversible operations
// expose their inverse through Reverse:
//
//	enc, _ := textops.Lookup("hex_encode")
//	dec, _ := enc.Reverse()
//	// dec is hex_decode
//
// Decode operations fail with an error wrapping ErrMalformedInput when
// handed a representation they cannot parse. They never return a
// truncated best-effort result. Two codecs are lossy on the encode side
// by contract and documented as such: Morse drops characters outside its
// 36-symbol alphabet, and the binary codec only survives a round trip for
// ASCII input.
//
// # Pipelines
//
// Operations chain into pipelines, which can be reversed when every step
// has an inverse:
//
//	pipeline := &textops.Pipeline{
//	    Operations: []textops.OperationConfig{
//	        {Name: "rot13"},
//	        {Name: "hex_encode"},
//	    },
//	    Reversible: true,
//	}
//	encoded, _ := pipeline.Execute(ctx, []byte("secret"))
//	reversed, _ := pipeline.Reverse()
//	decoded, _ := reversed.Execute(ctx, encoded)
//
// # Detection
//
// FormatDetector guesses how a piece of input is encoded:
//
//	results, _ := textops.NewFormatDetector().Detect(ctx, input)
//	for _, r := range results {
//	    fmt.Printf("%s (%.0f%%): %s\n", r.Encoding, r.Confidence*100, r.Reasoning)
//	}
//
// # Available Operations
//
// Codecs:
//   - hex_encode/hex_decode - uppercase hex over UTF-8 bytes
//   - binary_encode/binary_decode - 8-bit binary tokens (ASCII-safe only)
//   - morse_encode/morse_decode - Morse tokens over A-Z, 0-9 (lossy)
//   - rot13 - self-inverse Caesar shift
//   - deflate_compress/deflate_decompress - UTF-16LE + DEFLATE + base64
//
// Normalizers:
//   - ascii_reencode, utf8_reencode, utf16be_reencode, utf32be_reencode
//
// Digests:
//   - sha256_digest - not reversible
//
// # Thread Safety
//
// The registry is safe for concurrent use. Operations are stateless; the
// only process-wide state is the read-only Morse table built once at init.
package textops
