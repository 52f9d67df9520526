package codec

import (
	"fmt"
	"math/bits"

	"github.com/lagom-nlp/irse/bitseq"
)

// Gamma is the Elias gamma code: the unary bit length of n followed by n
// without its leading one.
//
//	1 -> 1
//	5 -> 001 01
//	9 -> 0001 001
type Gamma struct {
	unary Unary
}

var (
	_ Codec    = Gamma{}
	_ BitCoder = Gamma{}
)

// NewGamma returns an Elias gamma code.
func NewGamma() Gamma {
	return Gamma{}
}

// AppendValue implements BitCoder.
func (c Gamma) AppendValue(b *bitseq.Builder, value uint64) error {
	if value == 0 {
		return fmt.Errorf("%w: gamma needs n >= 1", ErrOutOfRange)
	}

	n := bits.Len64(value)
	if err := c.unary.AppendValue(b, uint64(n)); err != nil {
		return err
	}
	b.AppendUint(value, n-1)

	return nil
}

// ReadValue implements BitCoder.
func (c Gamma) ReadValue(r *bitseq.Reader) (uint64, error) {
	n, err := c.unary.ReadValue(r)
	if err != nil {
		return 0, err
	}

	return readImplicitOne(r, n)
}

// readImplicitOne reads n-1 bits and puts the leading one back.
func readImplicitOne(r *bitseq.Reader, n uint64) (uint64, error) {
	if n > 64 {
		return 0, fmt.Errorf("%w: %d-bit length prefix", ErrOverflow, n)
	}

	tail, err := r.ReadUint(int(n - 1))
	if err != nil {
		return 0, err
	}

	return 1<<(n-1) | tail, nil
}

// Encode implements Codec.
func (c Gamma) Encode(value uint64) (bitseq.Bits, error) {
	return EncodeValue(c, value)
}

// Decode implements Codec.
func (c Gamma) Decode(bits bitseq.Bits) (uint64, int, error) {
	return DecodeValue(c, bits)
}

// EncodeMany implements Codec.
func (c Gamma) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return EncodeEach(c, values)
}

// DecodeMany implements Codec.
func (c Gamma) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return DecodeEach(c, bits)
}
