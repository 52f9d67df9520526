package codec

import (
	"fmt"
	"math/bits"

	"github.com/lagom-nlp/irse/bitseq"
)

// Delta is the Elias delta code. It has the structure of Gamma, but the bit
// length of n is itself gamma-coded, which shortens codewords of large values.
//
//	1  -> 1
//	23 -> 00101 0111
type Delta struct {
	gamma Gamma
}

var (
	_ Codec    = Delta{}
	_ BitCoder = Delta{}
)

// NewDelta returns an Elias delta code.
func NewDelta() Delta {
	return Delta{}
}

// AppendValue implements BitCoder.
func (c Delta) AppendValue(b *bitseq.Builder, value uint64) error {
	if value == 0 {
		return fmt.Errorf("%w: delta needs n >= 1", ErrOutOfRange)
	}

	n := bits.Len64(value)
	if err := c.gamma.AppendValue(b, uint64(n)); err != nil {
		return err
	}
	b.AppendUint(value, n-1)

	return nil
}

// ReadValue implements BitCoder.
func (c Delta) ReadValue(r *bitseq.Reader) (uint64, error) {
	n, err := c.gamma.ReadValue(r)
	if err != nil {
		return 0, err
	}

	return readImplicitOne(r, n)
}

// Encode implements Codec.
func (c Delta) Encode(value uint64) (bitseq.Bits, error) {
	return EncodeValue(c, value)
}

// Decode implements Codec.
func (c Delta) Decode(bits bitseq.Bits) (uint64, int, error) {
	return DecodeValue(c, bits)
}

// EncodeMany implements Codec.
func (c Delta) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return EncodeEach(c, values)
}

// DecodeMany implements Codec.
func (c Delta) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return DecodeEach(c, bits)
}
