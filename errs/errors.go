// Package errs defines the sentinel errors returned by basen.
//
// Two root sentinels exist: ErrInvalidAlphabet covers every construction-time
// failure, and ErrInvalidInput covers every decode-time failure. The more
// specific sentinels wrap their root, so callers can match at either level:
//
//	if errors.Is(err, errs.ErrInvalidInput) { ... }
//	if errors.Is(err, errs.ErrMisplacedPadding) { ... }
package errs

import (
	"errors"
	"fmt"
)

// Root sentinels. Every error produced by this module wraps one of these.
var (
	// ErrInvalidAlphabet indicates the codec could not be constructed from the
	// given alphabet and separator. Non-recoverable; the configuration must be
	// fixed by the caller.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidInput indicates the text passed to Decode was not produced by
	// a codec with the same configuration. The call produces no output.
	ErrInvalidInput = errors.New("invalid input")
)

// Construction errors, all wrapping ErrInvalidAlphabet.
var (
	ErrAlphabetNotPowerOfTwo = fmt.Errorf("%w: data symbol count is not a power of two", ErrInvalidAlphabet)
	ErrDuplicateSymbol       = fmt.Errorf("%w: duplicate symbol", ErrInvalidAlphabet)
	ErrSeparatorCollision    = fmt.Errorf("%w: separator collides with an alphabet symbol", ErrInvalidAlphabet)
)

// Decode errors, all wrapping ErrInvalidInput.
var (
	ErrInvalidSymbol      = fmt.Errorf("%w: unrecognized symbol", ErrInvalidInput)
	ErrMisplacedPadding   = fmt.Errorf("%w: padding symbol in non-trailing position", ErrInvalidInput)
	ErrMalformedSeparator = fmt.Errorf("%w: malformed separator placement", ErrInvalidInput)
	ErrTruncatedBlock     = fmt.Errorf("%w: symbol count inconsistent with block size", ErrInvalidInput)
	ErrChecksumMismatch   = fmt.Errorf("%w: checksum mismatch", ErrInvalidInput)
)
