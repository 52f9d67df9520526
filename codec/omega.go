package codec

import (
	"fmt"
	"math/bits"

	"github.com/lagom-nlp/irse/bitseq"
)

// Omega is the Elias omega (recursive) code.
//
// Encoding prepends the binary form of the current value while it is not 1,
// replacing the value by the length of what was just written minus one, and
// ends with a single 0. Every chunk starts with a one, so a 0 where a chunk
// would start is the terminator.
//
//	1  -> 0
//	2  -> 10 0
//	69 -> 10 110 1000101 0
type Omega struct{}

var (
	_ Codec    = Omega{}
	_ BitCoder = Omega{}
)

// NewOmega returns an Elias omega code.
func NewOmega() Omega {
	return Omega{}
}

// AppendValue implements BitCoder.
func (Omega) AppendValue(b *bitseq.Builder, value uint64) error {
	if value == 0 {
		return fmt.Errorf("%w: omega needs n >= 1", ErrOutOfRange)
	}

	// At most five chunks fit a 64-bit value: 64 -> 6 -> 2 -> 1.
	var chunks [8]uint64
	count := 0
	for value != 1 {
		chunks[count] = value
		count++
		value = uint64(bits.Len64(value) - 1)
	}

	for i := count - 1; i >= 0; i-- {
		b.AppendBinary(chunks[i])
	}
	b.AppendZero()

	return nil
}

// ReadValue implements BitCoder.
func (Omega) ReadValue(r *bitseq.Reader) (uint64, error) {
	value := uint64(1)
	for {
		bit, err := r.PeekBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			_, _ = r.ReadBit()
			return value, nil
		}

		// The next chunk is value+1 bits wide.
		if value >= 64 {
			return 0, fmt.Errorf("%w: omega chunk of %d bits", ErrOverflow, value+1)
		}
		value, err = r.ReadUint(int(value) + 1)
		if err != nil {
			return 0, err
		}
	}
}

// Encode implements Codec.
func (c Omega) Encode(value uint64) (bitseq.Bits, error) {
	return EncodeValue(c, value)
}

// Decode implements Codec.
func (c Omega) Decode(bits bitseq.Bits) (uint64, int, error) {
	return DecodeValue(c, bits)
}

// EncodeMany implements Codec.
func (c Omega) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return EncodeEach(c, values)
}

// DecodeMany implements Codec.
func (c Omega) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return DecodeEach(c, bits)
}
