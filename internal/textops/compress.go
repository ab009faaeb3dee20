package textops

import (
	"bytes"
	"compress/flate"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
)

// wideEncoding is the fixed 2-byte-per-unit serialization used by the
// compression codec: UTF-16 little-endian without a byte order mark.
var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DeflateCompressOp serializes text as UTF-16LE, compresses the bytes with
// DEFLATE, and base64-encodes the result into a printable payload.
type DeflateCompressOp struct {
	BaseOperation
}

func (op *DeflateCompressOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	wide, err := wideEncoding.NewEncoder().Bytes(input)
	if err != nil {
		return nil, fmt.Errorf("utf-16 encode: %w", err)
	}

	var buf bytes.Buffer
	writer, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("deflate writer: %w", err)
	}
	if _, err := writer.Write(wide); err != nil {
		return nil, fmt.Errorf("deflate write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("deflate close: %w", err)
	}

	return []byte(base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// DeflateDecompressOp reverses DeflateCompressOp stage by stage. Invalid
// base64, a corrupt DEFLATE stream, and an odd decompressed byte count are
// all malformed input.
type DeflateDecompressOp struct {
	BaseOperation
}

func (op *DeflateDecompressOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(string(input))
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w: %v", ErrMalformedInput, err)
	}

	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()
	wide, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("deflate read: %w: %v", ErrMalformedInput, err)
	}

	if len(wide)%2 != 0 {
		return nil, fmt.Errorf("utf-16 decode: %w: odd byte count %d", ErrMalformedInput, len(wide))
	}
	text, err := wideEncoding.NewDecoder().Bytes(wide)
	if err != nil {
		return nil, fmt.Errorf("utf-16 decode: %w: %v", ErrMalformedInput, err)
	}
	return text, nil
}

// SHA256DigestOp computes the lowercase hex SHA-256 digest of the UTF-8
// bytes. One-way; it has no reverse.
type SHA256DigestOp struct {
	BaseOperation
}

func (op *SHA256DigestOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	sum := sha256.Sum256(input)
	return []byte(hex.EncodeToString(sum[:])), nil
}

func init() {
	compress := &DeflateCompressOp{
		BaseOperation: BaseOperation{
			NameValue:        "deflate_compress",
			TypeValue:        OperationTypeCompress,
			DescriptionValue: "UTF-16LE serialize, DEFLATE compress, base64 encode",
		},
	}
	decompress := &DeflateDecompressOp{
		BaseOperation: BaseOperation{
			NameValue:        "deflate_decompress",
			TypeValue:        OperationTypeDecompress,
			DescriptionValue: "Base64 decode, DEFLATE decompress, UTF-16LE deserialize",
		},
	}
	compress.ReverseOp = decompress
	decompress.ReverseOp = compress

	digest := &SHA256DigestOp{
		BaseOperation: BaseOperation{
			NameValue:        "sha256_digest",
			TypeValue:        OperationTypeHash,
			DescriptionValue: "SHA-256 digest as 64 lowercase hex characters",
		},
	}

	mustRegister(compress)
	mustRegister(decompress)
	mustRegister(digest)
}
