package compress

import (
	"fmt"

	"github.com/lagom-nlp/irse/format"
)

// Compressor compresses a packed bit payload.
//
// The returned slice is owned by the caller; the input is not modified.
// Implementations may reuse internal state between calls.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It returns an
// error when data is corrupted or was produced by another algorithm.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	packed, err := decompressor.Decompress(payload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every built-in Codec is safe for
// concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the payload size before compression.
	OriginalSize int64

	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an
// empty payload. Values below 1.0 mean the compressor helped.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// maxDecompressedSize bounds the output of decompressors that have to size
// their buffer up front.
const maxDecompressedSize = 128 << 20

var builtinCodecs = [...]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if !compressionType.IsValid() {
		return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
	}

	return builtinCodecs[compressionType], nil
}
