package textops

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Re-encoding operations push text through a named byte encoding and back.
// They normalize a string against that encoding's representable range: the
// output equals the input whenever the input already conforms, and applies
// the encoder's standard loss policy when it does not.

// ASCIIReencodeOp replaces every code point above U+007F with '?', the
// conventional narrowing policy for ASCII encoders. Silent loss here is by
// design; see the package documentation.
type ASCIIReencodeOp struct {
	BaseOperation
}

func (op *ASCIIReencodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	out := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '?'
		}
		return r
	}, string(input))
	return []byte(out), nil
}

// UTF8ReencodeOp validates the input as UTF-8, replacing invalid sequences
// with U+FFFD.
type UTF8ReencodeOp struct {
	BaseOperation
}

func (op *UTF8ReencodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return bytes.ToValidUTF8(input, []byte("\uFFFD")), nil
}

// UTF16BEReencodeOp round-trips text through big-endian UTF-16. Unpaired
// surrogates come back as U+FFFD per the standard codec.
type UTF16BEReencodeOp struct {
	BaseOperation
}

func (op *UTF16BEReencodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	enc := xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)
	wide, err := enc.NewEncoder().Bytes(input)
	if err != nil {
		return nil, fmt.Errorf("utf-16be encode: %w", err)
	}
	out, err := enc.NewDecoder().Bytes(wide)
	if err != nil {
		return nil, fmt.Errorf("utf-16be decode: %w: %v", ErrMalformedInput, err)
	}
	return out, nil
}

// UTF32ReencodeOp round-trips text through big-endian UTF-32.
type UTF32ReencodeOp struct {
	BaseOperation
}

func (op *UTF32ReencodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	enc := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	quad, err := enc.NewEncoder().Bytes(input)
	if err != nil {
		return nil, fmt.Errorf("utf-32 encode: %w", err)
	}
	out, err := enc.NewDecoder().Bytes(quad)
	if err != nil {
		return nil, fmt.Errorf("utf-32 decode: %w: %v", ErrMalformedInput, err)
	}
	return out, nil
}

func init() {
	ops := []Operation{
		&ASCIIReencodeOp{BaseOperation: BaseOperation{
			NameValue:        "ascii_reencode",
			TypeValue:        OperationTypeTransform,
			DescriptionValue: "Normalize through ASCII, replacing code points above U+007F with '?'",
		}},
		&UTF8ReencodeOp{BaseOperation: BaseOperation{
			NameValue:        "utf8_reencode",
			TypeValue:        OperationTypeTransform,
			DescriptionValue: "Normalize through UTF-8, replacing invalid sequences with U+FFFD",
		}},
		&UTF16BEReencodeOp{BaseOperation: BaseOperation{
			NameValue:        "utf16be_reencode",
			TypeValue:        OperationTypeTransform,
			DescriptionValue: "Normalize through big-endian UTF-16",
		}},
		&UTF32ReencodeOp{BaseOperation: BaseOperation{
			NameValue:        "utf32be_reencode",
			TypeValue:        OperationTypeTransform,
			DescriptionValue: "Normalize through big-endian UTF-32",
		}},
	}
	for _, op := range ops {
		mustRegister(op)
	}
}
