package compress

// ZstdCompressor provides Zstandard compression, trading some speed for the
// best compression ratio of the built-in codecs.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// and a pure-Go one (klauspost/compress/zstd). The pure-Go implementation is
// the default.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
