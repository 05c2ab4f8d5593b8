package codec

import (
	"fmt"
	"math/bits"
	"unicode/utf8"

	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/options"
	"github.com/arloliu/basen/internal/pool"
)

// Codec encodes byte sequences to text and back using a power-of-two base-N
// alphabet. The last symbol of the alphabet is reserved as the padding symbol,
// mirroring the RFC 4648 padding discipline generalized to any power-of-two
// base.
//
// A Codec is immutable after construction and safe for concurrent use by
// multiple goroutines; Encode and Decode hold no per-call state on the Codec.
type Codec struct {
	symbols    []rune          // data symbols, in alphabet order
	reverse    map[rune]uint64 // symbol -> k-bit value
	padChar    rune
	sep        rune
	hasSep     bool
	bitsPerSym uint // k = log2(len(symbols))
	blockLen   int  // symbols per byte-aligned output block
}

// Option is a functional option for configuring a Codec during construction.
type Option = options.Option[*Codec]

// WithSeparator configures a cosmetic separator symbol placed between every
// pair of adjacent output symbols. The separator carries no data and is
// stripped during decoding. It must not collide with any alphabet symbol.
func WithSeparator(sep rune) Option {
	return options.NoError(func(c *Codec) {
		c.sep = sep
		c.hasSep = true
	})
}

// New creates a Codec from the given alphabet.
//
// The alphabet is an ordered sequence of N+1 distinct symbols: the first N are
// data symbols and the final one is the padding symbol. N must be a power of
// two, N >= 2. Each data symbol encodes k = log2(N) bits.
//
// Returns an error wrapping errs.ErrInvalidAlphabet when the data symbol
// count is not a power of two, any symbol repeats, or the separator collides
// with an alphabet symbol.
func New(alphabet string, opts ...Option) (*Codec, error) {
	runes := []rune(alphabet)

	n := len(runes) - 1 // data symbols, excluding the trailing padding symbol
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d data symbols", errs.ErrAlphabetNotPowerOfTwo, n)
	}

	c := &Codec{
		symbols:    runes[:n],
		padChar:    runes[n],
		reverse:    make(map[rune]uint64, n),
		bitsPerSym: uint(bits.TrailingZeros(uint(n))),
	}
	c.blockLen = 8 / gcd(8, int(c.bitsPerSym))

	for i, r := range c.symbols {
		if _, dup := c.reverse[r]; dup || r == c.padChar {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateSymbol, r)
		}
		c.reverse[r] = uint64(i)
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.hasSep {
		if _, ok := c.reverse[c.sep]; ok || c.sep == c.padChar {
			return nil, fmt.Errorf("%w: %q", errs.ErrSeparatorCollision, c.sep)
		}
	}

	return c, nil
}

// Encode converts data to its textual representation.
//
// The input is treated as a bitstream in big-endian bit order and regrouped
// into k-bit symbols. A short final group is zero-extended on the right
// before mapping. Padding symbols fill the output up to the next block
// boundary, and the separator (if configured) joins every adjacent pair of
// symbols. Empty input encodes to an empty string.
func (c *Codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	k := c.bitsPerSym
	mask := uint64(1)<<k - 1

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	nSyms := 0
	emit := func(r rune) {
		if c.hasSep && nSyms > 0 {
			buf.B = utf8.AppendRune(buf.B, c.sep)
		}
		buf.B = utf8.AppendRune(buf.B, r)
		nSyms++
	}

	var acc uint64
	var nbits uint
	for _, b := range data {
		acc = acc<<8 | uint64(b)
		nbits += 8
		for nbits >= k {
			nbits -= k
			emit(c.symbols[acc>>nbits&mask])
		}
	}
	if nbits > 0 {
		// Zero-extend the short final group on the right up to k bits.
		emit(c.symbols[acc<<(k-nbits)&mask])
	}

	for nSyms%c.blockLen != 0 {
		emit(c.padChar)
	}

	return string(buf.Bytes())
}

// Decode converts text produced by Encode back to the original bytes.
//
// Decoding is strict: unrecognized symbols, padding in a non-trailing
// position, malformed separator placement, and symbol counts that could not
// have been produced by Encode all fail with an error wrapping
// errs.ErrInvalidInput. The error carries the offending symbol and its byte
// position where applicable. Empty text decodes to empty bytes.
func (c *Codec) Decode(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	k := c.bitsPerSym
	out := make([]byte, 0, len(text)*int(k)/8+1)

	var acc uint64
	var nbits uint
	nData, nPad := 0, 0
	expectSep := false // a symbol was just consumed; separator (or end) must follow

	for i, r := range text {
		if c.hasSep && r == c.sep {
			if !expectSep {
				return nil, fmt.Errorf("%w: separator at position %d", errs.ErrMalformedSeparator, i)
			}
			expectSep = false

			continue
		}
		if c.hasSep && expectSep {
			return nil, fmt.Errorf("%w: missing separator before position %d", errs.ErrMalformedSeparator, i)
		}
		expectSep = true

		if r == c.padChar {
			nPad++
			continue
		}
		if nPad > 0 {
			return nil, fmt.Errorf("%w: data symbol %q at position %d", errs.ErrMisplacedPadding, r, i)
		}

		v, ok := c.reverse[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", errs.ErrInvalidSymbol, r, i)
		}

		acc = acc<<k | v
		nbits += k
		for nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
		}
		nData++
	}

	if c.hasSep && !expectSep {
		return nil, fmt.Errorf("%w: trailing separator", errs.ErrMalformedSeparator)
	}

	if total := nData + nPad; total%c.blockLen != 0 {
		return nil, fmt.Errorf("%w: %d symbols, block size %d", errs.ErrTruncatedBlock, total, c.blockLen)
	}
	if nPad >= c.blockLen {
		return nil, fmt.Errorf("%w: %d padding symbols fill a whole block", errs.ErrMisplacedPadding, nPad)
	}
	// The leftover bits are the encoder's zero-extension of a short final
	// group; there can never be a full group's worth of them.
	if nbits >= k {
		return nil, fmt.Errorf("%w: %d trailing bits do not form a valid partial group", errs.ErrTruncatedBlock, nbits)
	}

	return out, nil
}

// EncodedLen returns the length in symbols (runes) of the encoded form of n
// input bytes, including padding symbols and separators.
func (c *Codec) EncodedLen(n int) int {
	if n == 0 {
		return 0
	}

	k := int(c.bitsPerSym)
	groups := (n*8 + k - 1) / k
	syms := (groups + c.blockLen - 1) / c.blockLen * c.blockLen
	if c.hasSep {
		return 2*syms - 1
	}

	return syms
}

// DecodedLen returns the maximum number of bytes produced by decoding n data
// symbols.
func (c *Codec) DecodedLen(n int) int {
	return n * int(c.bitsPerSym) / 8
}

// Base returns the number of data symbols N in the alphabet.
func (c *Codec) Base() int {
	return len(c.symbols)
}

// BitsPerSymbol returns k, the number of bits each data symbol encodes.
func (c *Codec) BitsPerSymbol() int {
	return int(c.bitsPerSym)
}

// BlockSize returns the output block size L in symbols. Encoded output is
// always padded to a multiple of L so the original byte length can be
// recovered without external metadata.
func (c *Codec) BlockSize() int {
	return c.blockLen
}

// Padding returns the padding symbol.
func (c *Codec) Padding() rune {
	return c.padChar
}

// Separator returns the configured separator symbol and whether one is set.
func (c *Codec) Separator() (rune, bool) {
	return c.sep, c.hasSep
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
