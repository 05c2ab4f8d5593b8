package format

type (
	AlphabetType    uint8
	CompressionType uint8
)

const (
	AlphabetBase8     AlphabetType = 0x1 // AlphabetBase8 represents the octal alphabet "01234567".
	AlphabetBase16    AlphabetType = 0x2 // AlphabetBase16 represents the uppercase hex alphabet.
	AlphabetBase32    AlphabetType = 0x3 // AlphabetBase32 represents the RFC 4648 Base32 alphabet.
	AlphabetBase32Hex AlphabetType = 0x4 // AlphabetBase32Hex represents the RFC 4648 extended-hex Base32 alphabet.
	AlphabetBase64    AlphabetType = 0x5 // AlphabetBase64 represents the RFC 4648 standard Base64 alphabet.
	AlphabetBase64URL AlphabetType = 0x6 // AlphabetBase64URL represents the RFC 4648 URL-safe Base64 alphabet.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (a AlphabetType) String() string {
	switch a {
	case AlphabetBase8:
		return "Base8"
	case AlphabetBase16:
		return "Base16"
	case AlphabetBase32:
		return "Base32"
	case AlphabetBase32Hex:
		return "Base32Hex"
	case AlphabetBase64:
		return "Base64"
	case AlphabetBase64URL:
		return "Base64URL"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
