package bitseq

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/lagom-nlp/irse/internal/pool"
)

// Pack converts b into bytes, most significant bit first. The final byte is
// zero-padded; callers must keep b.Len() to undo the padding with Unpack.
func Pack(b Bits) ([]byte, error) {
	buf := pool.GetPackBuffer()
	defer pool.PutPackBuffer(buf)

	w := bitio.NewWriter(buf)
	for i := 0; i < len(b); i++ {
		bit, err := symbolAt(b, i)
		if err != nil {
			return nil, err
		}
		if err := w.WriteBool(bit == 1); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	packed := make([]byte, buf.Len())
	copy(packed, buf.Bytes())

	return packed, nil
}

// PackedLen returns the number of bytes Pack produces for nbits symbols.
func PackedLen(nbits int) int {
	return (nbits + 7) / 8
}

// Unpack expands the first nbits bits of data into a bit sequence.
func Unpack(data []byte, nbits int) (Bits, error) {
	if nbits < 0 {
		return "", fmt.Errorf("%w: negative bit count %d", ErrWidth, nbits)
	}
	if PackedLen(nbits) > len(data) {
		return "", fmt.Errorf("%w: need %d bytes for %d bits, have %d", ErrTruncated, PackedLen(nbits), nbits, len(data))
	}

	b := NewBuilder()
	defer b.Finish()

	r := bitio.NewReader(bytes.NewReader(data[:PackedLen(nbits)]))
	for left := nbits; left > 0; {
		width := min(left, 64)
		v, err := r.ReadBits(uint8(width))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		b.AppendUint(v, width)
		left -= width
	}

	return b.Bits(), nil
}
