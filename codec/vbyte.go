package codec

import (
	"fmt"
	"math/bits"

	"github.com/lagom-nlp/irse/bitseq"
)

const (
	vbytePayloadBits = 7
	vbyteGroupBits   = vbytePayloadBits + 1
)

// VByte is the variable-byte code.
//
// The value is left-padded with zeros to a multiple of seven bits and split
// into seven-bit groups, most significant first. Each group is preceded by a
// flag bit: 0 when more groups follow, 1 on the last group.
//
//	5   -> 1 0000101
//	421 -> 0 0000011 1 0100101
type VByte struct{}

var (
	_ Codec    = VByte{}
	_ BitCoder = VByte{}
)

// NewVByte returns a variable-byte code.
func NewVByte() VByte {
	return VByte{}
}

// AppendValue implements BitCoder.
func (VByte) AppendValue(b *bitseq.Builder, value uint64) error {
	if value == 0 {
		return fmt.Errorf("%w: vbyte needs n >= 1", ErrOutOfRange)
	}

	groups := (bits.Len64(value)-1)/vbytePayloadBits + 1
	for i := groups - 1; i >= 0; i-- {
		b.AppendBit(i == 0)
		b.AppendUint(value>>(uint(i)*vbytePayloadBits), vbytePayloadBits)
	}

	return nil
}

// ReadValue implements BitCoder.
func (VByte) ReadValue(r *bitseq.Reader) (uint64, error) {
	var value uint64
	for {
		last, err := r.ReadBit()
		if err != nil {
			return 0, err
		}

		payload, err := r.ReadUint(vbytePayloadBits)
		if err != nil {
			return 0, err
		}

		if value>>(64-vbytePayloadBits) != 0 {
			return 0, fmt.Errorf("%w: vbyte value wider than 64 bits", ErrOverflow)
		}
		value = value<<vbytePayloadBits | payload

		if last == 1 {
			return value, nil
		}
	}
}

// Encode implements Codec.
func (c VByte) Encode(value uint64) (bitseq.Bits, error) {
	return EncodeValue(c, value)
}

// Decode implements Codec.
func (c VByte) Decode(bits bitseq.Bits) (uint64, int, error) {
	return DecodeValue(c, bits)
}

// EncodeMany implements Codec.
func (c VByte) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return EncodeEach(c, values)
}

// DecodeMany implements Codec.
func (c VByte) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return DecodeEach(c, bits)
}
