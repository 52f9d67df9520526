package codec

import (
	"fmt"
	"math/bits"

	"github.com/lagom-nlp/irse/bitseq"
)

// GolombRice is the Golomb code with bucket size M.
//
// A value n is shifted to n-1, split into a quotient q = (n-1)/M and a
// remainder r = (n-1) mod M, and written as Unary(q+1) followed by r in a
// fixed-width field. The field is as wide as the binary form of M-1, so M=1
// and M=2 both use one bit.
type GolombRice struct {
	unary  Unary
	bucket uint64
	width  int
}

var (
	_ Codec    = GolombRice{}
	_ BitCoder = GolombRice{}
)

// NewGolombRice returns a Golomb-Rice code with the given bucket size.
func NewGolombRice(bucketSize uint64) (GolombRice, error) {
	if bucketSize == 0 {
		return GolombRice{}, fmt.Errorf("%w: bucket size must be >= 1", ErrInvalidBucketSize)
	}

	return GolombRice{
		bucket: bucketSize,
		width:  bitseq.BinaryLen(bucketSize - 1),
	}, nil
}

// MustGolombRice is like NewGolombRice but panics on an invalid bucket size.
func MustGolombRice(bucketSize uint64) GolombRice {
	c, err := NewGolombRice(bucketSize)
	if err != nil {
		panic(err)
	}

	return c
}

// BucketSize returns M.
func (c GolombRice) BucketSize() uint64 {
	return c.bucket
}

// OffsetWidth returns the width of the remainder field.
func (c GolombRice) OffsetWidth() int {
	return c.width
}

// AppendValue implements BitCoder.
func (c GolombRice) AppendValue(b *bitseq.Builder, value uint64) error {
	if c.bucket == 0 {
		return ErrInvalidBucketSize
	}
	if value == 0 {
		return fmt.Errorf("%w: golomb-rice needs n >= 1", ErrOutOfRange)
	}

	shifted := value - 1
	if err := c.unary.AppendValue(b, shifted/c.bucket+1); err != nil {
		return err
	}
	b.AppendUint(shifted%c.bucket, c.width)

	return nil
}

// ReadValue implements BitCoder.
func (c GolombRice) ReadValue(r *bitseq.Reader) (uint64, error) {
	if c.bucket == 0 {
		return 0, ErrInvalidBucketSize
	}

	q, err := c.unary.ReadValue(r)
	if err != nil {
		return 0, err
	}

	rem, err := r.ReadUint(c.width)
	if err != nil {
		return 0, err
	}
	if rem >= c.bucket {
		return 0, fmt.Errorf("%w: remainder %d not below bucket size %d", ErrMalformed, rem, c.bucket)
	}

	hi, lo := bits.Mul64(q-1, c.bucket)
	sum, carry := bits.Add64(lo, rem, 0)
	if hi != 0 || carry != 0 || sum == ^uint64(0) {
		return 0, fmt.Errorf("%w: golomb-rice value", ErrOverflow)
	}

	return sum + 1, nil
}

// Encode implements Codec.
func (c GolombRice) Encode(value uint64) (bitseq.Bits, error) {
	return EncodeValue(c, value)
}

// Decode implements Codec.
func (c GolombRice) Decode(bits bitseq.Bits) (uint64, int, error) {
	return DecodeValue(c, bits)
}

// EncodeMany implements Codec.
func (c GolombRice) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return EncodeEach(c, values)
}

// DecodeMany implements Codec.
func (c GolombRice) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return DecodeEach(c, bits)
}
