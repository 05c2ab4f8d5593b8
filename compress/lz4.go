package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Block markers. The LZ4 block format cannot represent incompressible data,
// so a one-byte header records whether the payload is stored raw.
const (
	lz4BlockRaw        = 0x0
	lz4BlockCompressed = 0x1
)

// LZ4Compressor provides LZ4 block compression, favoring decompression speed
// over compression ratio. Incompressible payloads are stored raw behind a
// one-byte block marker.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data))+1)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 || n >= len(data) {
		// CompressBlock reports incompressible input as n == 0; store raw.
		out := make([]byte, len(data)+1)
		out[0] = lz4BlockRaw
		copy(out[1:], data)

		return out, nil
	}

	dst[0] = lz4BlockCompressed

	return dst[:n+1], nil
}

// Decompress decompresses the input data using LZ4 block decompression.
//
// The LZ4 block format does not carry the decompressed size, so the buffer is
// sized adaptively:
//  1. Start with a buffer 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer size (up to maxSize)
//  3. Give up once the buffer exceeds the 128MB safety limit
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case lz4BlockRaw:
		out := make([]byte, len(data)-1)
		copy(out, data[1:])

		return out, nil
	case lz4BlockCompressed:
		// handled below
	default:
		return nil, fmt.Errorf("invalid lz4 block marker: 0x%02x", data[0])
	}

	block := data[1:]
	bufSize := len(block) * 4
	const maxSize = 128 * 1024 * 1024 // 128MB safety limit

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	// Buffer exceeded maxSize - likely corrupted data or unreasonable compression ratio
	return nil, lz4.ErrInvalidSourceShortBuffer
}
