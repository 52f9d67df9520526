package compress

import (
	"errors"
	"fmt"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/format"
)

// ErrPackedLength is returned when a decompressed payload does not hold
// exactly the bytes its bit count needs.
var ErrPackedLength = errors.New("compress: packed length does not match bit count")

// CompressBits packs bits and compresses them. It returns the payload and
// the packed bytes it was made from, which are what a checksum covers.
func CompressBits(compressionType format.CompressionType, bits bitseq.Bits) (payload, packed []byte, err error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, nil, err
	}

	packed, err = bitseq.Pack(bits)
	if err != nil {
		return nil, nil, err
	}

	payload, err = codec.Compress(packed)
	if err != nil {
		return nil, nil, fmt.Errorf("compress %s payload: %w", compressionType, err)
	}

	return payload, packed, nil
}

// DecompressBits reverses CompressBits for a payload holding nbits bits.
func DecompressBits(compressionType format.CompressionType, payload []byte, nbits int) (bits bitseq.Bits, packed []byte, err error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return "", nil, err
	}

	packed, err = codec.Decompress(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decompress %s payload: %w", compressionType, err)
	}
	if nbits < 0 || bitseq.PackedLen(nbits) != len(packed) {
		return "", nil, fmt.Errorf("%w: %d bytes for %d bits", ErrPackedLength, len(packed), nbits)
	}

	bits, err = bitseq.Unpack(packed, nbits)
	if err != nil {
		return "", nil, err
	}

	return bits, packed, nil
}
