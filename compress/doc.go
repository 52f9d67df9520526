// Package compress provides the general-purpose compressors applied to packed
// bit payloads before they leave the process.
//
// Integer codes already remove most redundancy from a postings list, but the
// packed output of the simpler codes (unary runs, Simple-9 padding, VByte
// flag bits) still compresses. The block package runs the packed bytes
// through one of these codecs:
//   - None: payload stored as is
//   - Zstd: best ratio
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CompressBits and DecompressBits pack a bit sequence and run it through a
// codec in one step, returning the packed bytes alongside for checksums.
//
// # Zstandard backends
//
// The default build uses the pure-Go github.com/klauspost/compress/zstd with
// pooled encoders and decoders. Building with the gozstd tag (and cgo)
// switches to github.com/valyala/gozstd, which wraps the reference C library:
//
//	go build -tags gozstd ./...
//
// Both produce standard Zstandard frames, so payloads are interchangeable.
//
// # Thread Safety
//
// All codecs are safe for concurrent use; GetCodec returns shared instances.
package compress
