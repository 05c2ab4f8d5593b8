// Package compress provides compression codecs for payloads that are
// compressed before being text-encoded (and decompressed after decoding).
//
// Text encodings expand data by 8/k bits per symbol, so compressing the
// payload first often pays for the expansion on structured data. The root
// basen package wires these codecs into EncodeCompressed/DecodeCompressed.
//
// Supported algorithms:
//   - None: no compression (NoOpCompressor)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// All codecs implement the Codec interface and are stateless, safe for
// concurrent use, and selected either directly or through
// CreateCodec/GetCodec with a format.CompressionType.
package compress
