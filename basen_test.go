package basen

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/basen/codec"
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/format"
)

// TestPrebuiltCodecs verifies the package-level codecs cover the standard
// alphabets with the expected geometry.
func TestPrebuiltCodecs(t *testing.T) {
	tests := []struct {
		name  string
		codec *codec.Codec
		base  int
	}{
		{"Base8", Base8, 8},
		{"Base16", Base16, 16},
		{"Base32", Base32, 32},
		{"Base32Hex", Base32Hex, 32},
		{"Base64", Base64, 64},
		{"Base64URL", Base64URL, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.codec)
			require.Equal(t, tt.base, tt.codec.Base())
		})
	}
}

func TestPrebuiltCodecs_KnownOutput(t *testing.T) {
	require.Equal(t, "SGVsbG8=", Base64.Encode([]byte("Hello")))
	require.Equal(t, "JBSWY3DP", Base32.Encode([]byte("Hello")))
	require.Equal(t, "48656C6C6F", Base16.Encode([]byte("Hello")))
}

func TestNewCodec(t *testing.T) {
	for _, at := range []format.AlphabetType{
		format.AlphabetBase8,
		format.AlphabetBase16,
		format.AlphabetBase32,
		format.AlphabetBase32Hex,
		format.AlphabetBase64,
		format.AlphabetBase64URL,
	} {
		t.Run(at.String(), func(t *testing.T) {
			c, err := NewCodec(at)
			require.NoError(t, err)
			require.NotNil(t, c)

			decoded, err := c.Decode(c.Encode([]byte("round trip")))
			require.NoError(t, err)
			require.Equal(t, []byte("round trip"), decoded)
		})
	}
}

func TestNewCodec_WithOptions(t *testing.T) {
	c, err := NewCodec(format.AlphabetBase32, codec.WithSeparator('-'))
	require.NoError(t, err)
	require.Equal(t, "J-B-S-W-Y-3-D-P", c.Encode([]byte("Hello")))
}

func TestNewCodec_UnknownType(t *testing.T) {
	_, err := NewCodec(format.AlphabetType(0xFF))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown alphabet type")
}

func TestEncodeChecked_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, size := range []int{0, 1, 5, 64, 1024} {
		data := make([]byte, size)
		rng.Read(data)

		text := EncodeChecked(Base64, data)
		decoded, err := DecodeChecked(Base64, text)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

func TestDecodeChecked_DetectsCorruption(t *testing.T) {
	text := EncodeChecked(Base64, []byte("payload under test"))

	// Flip one data symbol to another valid symbol; the text still decodes
	// but the embedded digest no longer matches.
	flipped := []byte(text)
	if flipped[0] == 'A' {
		flipped[0] = 'B'
	} else {
		flipped[0] = 'A'
	}

	_, err := DecodeChecked(Base64, string(flipped))
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestDecodeChecked_TooShort(t *testing.T) {
	// A valid encoding of a payload shorter than the checksum itself.
	text := Base64.Encode([]byte("abc"))

	_, err := DecodeChecked(Base64, text)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeChecked_InvalidText(t *testing.T) {
	_, err := DecodeChecked(Base64, "not*valid*base64")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestEncodeCompressed_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("metric.value=42;"), 256)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			text, err := EncodeCompressed(Base64, payload, ct)
			require.NoError(t, err)

			decoded, err := DecodeCompressed(Base64, text, ct)
			require.NoError(t, err)
			require.Equal(t, payload, decoded)

			if ct != format.CompressionNone {
				// Repetitive payloads must come out shorter than plain encoding.
				require.Less(t, len(text), len(Base64.Encode(payload)))
			}
		})
	}
}

func TestEncodeCompressed_UnknownType(t *testing.T) {
	_, err := EncodeCompressed(Base64, []byte("x"), format.CompressionType(0xFF))
	require.Error(t, err)

	_, err = DecodeCompressed(Base64, "eA==", format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestDecodeCompressed_InvalidText(t *testing.T) {
	_, err := DecodeCompressed(Base64, "!!!", format.CompressionZstd)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}
