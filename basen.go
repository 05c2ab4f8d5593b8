// Package basen provides flexible base-N binary-to-text encoding with
// configurable power-of-two alphabets, RFC 4648-style padding, and optional
// separators between symbols.
//
// It generalizes Base64, Base32, and Base16 into a single parametrized codec
// and supports arbitrary custom alphabets (Base8, Base4096, ...) chosen by
// the caller.
//
// # Basic Usage
//
// Using a pre-built codec:
//
//	text := basen.Base64.Encode([]byte("Hello"))  // "SGVsbG8="
//	data, err := basen.Base64.Decode(text)        // []byte("Hello")
//
// Building a codec from a custom alphabet (the last symbol is the padding
// symbol, and the data symbol count must be a power of two):
//
//	c, err := codec.New("01234567=", codec.WithSeparator('-'))
//	if err != nil {
//	    return err
//	}
//	text := c.Encode(payload)
//
// # Checked and Compressed Helpers
//
// EncodeChecked appends an xxHash64 digest to the payload before encoding so
// DecodeChecked can detect corruption or mismatched codec configurations:
//
//	text := basen.EncodeChecked(basen.Base32, payload)
//	data, err := basen.DecodeChecked(basen.Base32, text)
//
// EncodeCompressed compresses the payload (Zstd, S2, or LZ4) before encoding,
// which often pays for the 8/k-bit expansion of text encoding:
//
//	text, err := basen.EncodeCompressed(basen.Base64, payload, format.CompressionZstd)
//	data, err := basen.DecodeCompressed(basen.Base64, text, format.CompressionZstd)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, simplifying the most common use cases. For custom alphabets and
// fine-grained control, use the codec package directly.
package basen

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/basen/codec"
	"github.com/arloliu/basen/compress"
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/format"
	"github.com/arloliu/basen/internal/hash"
)

// Pre-built codecs for the standard alphabets. They are immutable and safe
// for concurrent use.
var (
	Base8     = mustCodec(codec.Base8Alphabet)
	Base16    = mustCodec(codec.Base16Alphabet)
	Base32    = mustCodec(codec.Base32Alphabet)
	Base32Hex = mustCodec(codec.Base32HexAlphabet)
	Base64    = mustCodec(codec.Base64Alphabet)
	Base64URL = mustCodec(codec.Base64URLAlphabet)
)

func mustCodec(alphabet string) *codec.Codec {
	c, err := codec.New(alphabet)
	if err != nil {
		panic(err)
	}

	return c
}

// NewCodec creates a codec for one of the pre-defined alphabet types with
// custom options. Use codec.New directly for custom alphabets.
//
// Parameters:
//   - alphabet: One of the format.AlphabetType constants
//   - opts: Optional configuration functions (see codec.Option)
//
// Returns:
//   - *codec.Codec: The created codec.
//   - error: An error if the alphabet type is unknown or an option is invalid.
func NewCodec(alphabet format.AlphabetType, opts ...codec.Option) (*codec.Codec, error) {
	switch alphabet {
	case format.AlphabetBase8:
		return codec.New(codec.Base8Alphabet, opts...)
	case format.AlphabetBase16:
		return codec.New(codec.Base16Alphabet, opts...)
	case format.AlphabetBase32:
		return codec.New(codec.Base32Alphabet, opts...)
	case format.AlphabetBase32Hex:
		return codec.New(codec.Base32HexAlphabet, opts...)
	case format.AlphabetBase64:
		return codec.New(codec.Base64Alphabet, opts...)
	case format.AlphabetBase64URL:
		return codec.New(codec.Base64URLAlphabet, opts...)
	default:
		return nil, fmt.Errorf("unknown alphabet type: %s", alphabet)
	}
}

// EncodeChecked encodes data with an appended xxHash64 integrity checksum.
//
// The 8-byte big-endian digest of the payload is appended before encoding,
// so DecodeChecked can detect corrupted text, truncation that still decodes,
// or a codec configured with the wrong alphabet.
func EncodeChecked(c *codec.Codec, data []byte) string {
	payload := make([]byte, 0, len(data)+hash.ChecksumSize)
	payload = append(payload, data...)
	payload = binary.BigEndian.AppendUint64(payload, hash.Checksum(data))

	return c.Encode(payload)
}

// DecodeChecked decodes text produced by EncodeChecked, verifying and
// stripping the embedded checksum.
//
// Fails with an error wrapping errs.ErrChecksumMismatch when the decoded
// payload is too short to carry a checksum or the digest does not match.
func DecodeChecked(c *codec.Codec, text string) ([]byte, error) {
	payload, err := c.Decode(text)
	if err != nil {
		return nil, err
	}

	if len(payload) < hash.ChecksumSize {
		return nil, fmt.Errorf("%w: payload of %d bytes is too short to carry a checksum",
			errs.ErrChecksumMismatch, len(payload))
	}

	data := payload[:len(payload)-hash.ChecksumSize]
	want := binary.BigEndian.Uint64(payload[len(payload)-hash.ChecksumSize:])
	if got := hash.Checksum(data); got != want {
		return nil, fmt.Errorf("%w: computed 0x%016x, embedded 0x%016x",
			errs.ErrChecksumMismatch, got, want)
	}

	return data, nil
}

// EncodeCompressed compresses data with the given algorithm, then encodes the
// compressed payload as text.
//
// The same compression type must be passed to DecodeCompressed; it is not
// recorded in the output.
func EncodeCompressed(c *codec.Codec, data []byte, compression format.CompressionType) (string, error) {
	cc, err := compress.GetCodec(compression)
	if err != nil {
		return "", err
	}

	compressed, err := cc.Compress(data)
	if err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}

	return c.Encode(compressed), nil
}

// DecodeCompressed decodes text produced by EncodeCompressed and decompresses
// the payload with the given algorithm.
func DecodeCompressed(c *codec.Codec, text string, compression format.CompressionType) ([]byte, error) {
	cc, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	payload, err := c.Decode(text)
	if err != nil {
		return nil, err
	}

	data, err := cc.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	return data, nil
}
