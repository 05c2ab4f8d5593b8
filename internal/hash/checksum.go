package hash

import "github.com/cespare/xxhash/v2"

// ChecksumSize is the size of an appended checksum in bytes.
const ChecksumSize = 8

// Checksum computes the xxHash64 digest of the given data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
