// Package codec implements the core base-N encoding and decoding logic.
//
// A Codec is constructed once from an alphabet (an ordered sequence of N+1
// distinct symbols whose last symbol is reserved for padding) and an optional
// separator. N must be a power of two; each data symbol then encodes
// k = log2(N) bits of input.
//
// # Encoding Model
//
// Input bytes form a bitstream in big-endian bit order. The bitstream is
// split into k-bit groups left to right, each group indexing one data symbol.
// A short final group is zero-extended on the right before mapping. Padding
// symbols then fill the output to a multiple of the block size
// L = lcm(8, k) / k, which is exactly enough for the decoder to recover the
// original byte length without external metadata. This is the standard
// Base64/Base32 padding rule generalized to any power-of-two base:
//
//	base    k   block size L
//	Base64  6   4 symbols / 3 bytes
//	Base32  5   8 symbols / 5 bytes
//	Base16  4   2 symbols / 1 byte
//	Base8   3   8 symbols / 3 bytes
//
// # Usage
//
//	c, err := codec.New(codec.Base64Alphabet)
//	if err != nil {
//	    return err
//	}
//	text := c.Encode([]byte("Hello"))   // "SGVsbG8="
//	data, err := c.Decode(text)         // []byte("Hello")
//
// Custom alphabets and separators:
//
//	c, err := codec.New("01234567=", codec.WithSeparator('-'))
//	text = c.Encode([]byte{0xFF})       // "7-7-6-=-=-=-=-="
//
// Decoding is strict: it rejects unknown symbols, padding in non-trailing
// positions, malformed separator spacing, and symbol counts that Encode could
// not have produced. All decode failures wrap errs.ErrInvalidInput.
//
// For ready-made codecs and one-call helpers, see the root basen package.
package codec
