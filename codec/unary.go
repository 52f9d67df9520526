package codec

import (
	"fmt"

	"github.com/lagom-nlp/irse/bitseq"
)

// maxUnaryValue bounds unary codewords to 4Gi symbols.
const maxUnaryValue = 1 << 32

// Unary codes n as n-1 zeros followed by a one.
//
//	1 -> 1
//	2 -> 01
//	4 -> 0001
//
// Unary is the length prefix of Gamma and the quotient of Golomb-Rice.
type Unary struct{}

var (
	_ Codec    = Unary{}
	_ BitCoder = Unary{}
)

// NewUnary returns a unary code.
func NewUnary() Unary {
	return Unary{}
}

// AppendValue implements BitCoder.
func (Unary) AppendValue(b *bitseq.Builder, value uint64) error {
	if value == 0 || value > maxUnaryValue {
		return fmt.Errorf("%w: unary needs 1 <= n <= %d, got %d", ErrOutOfRange, uint64(maxUnaryValue), value)
	}

	b.AppendZeros(int(value - 1))
	b.AppendOne()

	return nil
}

// ReadValue implements BitCoder. It counts zeros up to the first one.
func (Unary) ReadValue(r *bitseq.Reader) (uint64, error) {
	var zeros uint64
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			return zeros + 1, nil
		}
		zeros++
	}
}

// Encode implements Codec.
func (c Unary) Encode(value uint64) (bitseq.Bits, error) {
	return EncodeValue(c, value)
}

// Decode implements Codec.
func (c Unary) Decode(bits bitseq.Bits) (uint64, int, error) {
	return DecodeValue(c, bits)
}

// EncodeMany implements Codec.
func (c Unary) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return EncodeEach(c, values)
}

// DecodeMany implements Codec.
func (c Unary) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return DecodeEach(c, bits)
}
