package textops

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Hex operations

// HexEncodeOp encodes each UTF-8 byte as two uppercase hex digits with no
// separator. The round trip through HexDecodeOp is exact for every input.
type HexEncodeOp struct {
	BaseOperation
}

func (op *HexEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(strings.ToUpper(hex.EncodeToString(input))), nil
}

// HexDecodeOp decodes a hex representation back to the original bytes.
// Odd-length input or non-hex characters are malformed.
type HexDecodeOp struct {
	BaseOperation
}

func (op *HexDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return nil, fmt.Errorf("hex decode: %w: %v", ErrMalformedInput, err)
	}
	return decoded, nil
}

// Binary operations

// BinaryEncodeOp renders each code point as a zero-padded 8-bit binary
// token, space separated. Code points above U+00FF produce tokens wider
// than 8 bits and will not survive a decode; callers wanting a true round
// trip must restrict input to the ASCII range.
type BinaryEncodeOp struct {
	BaseOperation
}

func (op *BinaryEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	first := true
	for _, r := range string(input) {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		buf.WriteString(fmt.Sprintf("%08b", r))
	}
	return buf.Bytes(), nil
}

// BinaryDecodeOp parses space-separated 8-bit binary tokens and
// reconstructs the bytes as ASCII. Any token that is not exactly eight
// binary digits is malformed.
type BinaryDecodeOp struct {
	BaseOperation
}

func (op *BinaryDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	text := string(input)
	if text == "" {
		return []byte{}, nil
	}

	tokens := strings.Split(text, " ")
	result := make([]byte, 0, len(tokens))
	for i, token := range tokens {
		if len(token) != 8 {
			return nil, fmt.Errorf("binary decode: %w: token %d is %d digits, want 8", ErrMalformedInput, i, len(token))
		}
		val, err := strconv.ParseUint(token, 2, 8)
		if err != nil {
			return nil, fmt.Errorf("binary decode: %w: token %d: %v", ErrMalformedInput, i, err)
		}
		result = append(result, byte(val))
	}
	return result, nil
}

// ROT13

// ROT13Op shifts letters by 13 positions and leaves everything else
// untouched. It is its own inverse.
type ROT13Op struct {
	BaseOperation
}

func (op *ROT13Op) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	out := []byte(strings.Map(rot13Rune, string(input)))
	return out, nil
}

func rot13Rune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+13)%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+13)%26
	default:
		return r
	}
}

func init() {
	hexEncode := &HexEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "hex_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode UTF-8 bytes as uppercase hexadecimal",
		},
	}
	hexDecode := &HexDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "hex_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode hexadecimal back to the original bytes",
		},
	}
	hexEncode.ReverseOp = hexDecode
	hexDecode.ReverseOp = hexEncode

	binaryEncode := &BinaryEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "binary_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode code points as space-separated 8-bit binary (ASCII-safe only)",
		},
	}
	binaryDecode := &BinaryDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "binary_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode space-separated 8-bit binary tokens as ASCII",
		},
	}
	binaryEncode.ReverseOp = binaryDecode
	binaryDecode.ReverseOp = binaryEncode

	rot13 := &ROT13Op{
		BaseOperation: BaseOperation{
			NameValue:        "rot13",
			TypeValue:        OperationTypeTransform,
			DescriptionValue: "Caesar shift of 13 over a-z and A-Z (self-inverse)",
		},
	}
	rot13.ReverseOp = rot13

	mustRegister(hexEncode)
	mustRegister(hexDecode)
	mustRegister(binaryEncode)
	mustRegister(binaryDecode)
	mustRegister(rot13)
}
