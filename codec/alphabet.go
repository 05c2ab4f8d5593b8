package codec

// Pre-defined alphabets for common power-of-two encodings. Each constant
// lists the data symbols in value order followed by the padding symbol.
//
// These are plain data consumed by New; custom alphabets of any power-of-two
// size (Base4, Base128, Base4096, ...) work the same way as long as every
// symbol is distinct.
const (
	// Base8Alphabet is the octal alphabet, 3 bits per symbol.
	Base8Alphabet = "01234567="

	// Base16Alphabet is the uppercase hexadecimal alphabet (RFC 4648 §8),
	// 4 bits per symbol.
	Base16Alphabet = "0123456789ABCDEF="

	// Base32Alphabet is the standard Base32 alphabet (RFC 4648 §6),
	// 5 bits per symbol.
	Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567="

	// Base32HexAlphabet is the extended-hex Base32 alphabet (RFC 4648 §7).
	// Encoded output sorts in the same order as the input bytes.
	Base32HexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV="

	// Base64Alphabet is the standard Base64 alphabet (RFC 4648 §4),
	// 6 bits per symbol.
	Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

	// Base64URLAlphabet is the URL- and filename-safe Base64 alphabet
	// (RFC 4648 §5).
	Base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="
)
