package codec

import (
	"fmt"

	"github.com/lagom-nlp/irse/bitseq"
)

// Codec is the capability every integer code implements.
//
// Values are positive integers. Codes defined only over sequences (Simple-9,
// interpolative) return ErrUnsupported from Encode and Decode.
type Codec interface {
	// Encode returns the codeword for a single value.
	Encode(value uint64) (bitseq.Bits, error)

	// Decode reads one codeword from the front of bits and returns the value
	// together with the number of symbols consumed.
	Decode(bits bitseq.Bits) (value uint64, consumed int, err error)

	// EncodeMany encodes values in order into one sequence.
	EncodeMany(values []uint64) (bitseq.Bits, error)

	// DecodeMany returns a lazy iterator over the values encoded in bits.
	// Every call starts from the beginning of bits.
	DecodeMany(bits bitseq.Bits) *Iterator[uint64]
}

// ValueCodec is the single-value half of Codec. It is all EncodeEach and
// DecodeEach need.
type ValueCodec interface {
	Encode(value uint64) (bitseq.Bits, error)
	Decode(bits bitseq.Bits) (value uint64, consumed int, err error)
}

// BitCoder is implemented by codes that can write straight into a Builder and
// read from a Reader. Composite codes (gamma on unary, delta on gamma) are
// built from it, and the default batch operations use it to avoid copying.
type BitCoder interface {
	// AppendValue appends the codeword for value to b.
	AppendValue(b *bitseq.Builder, value uint64) error

	// ReadValue consumes one codeword from r.
	ReadValue(r *bitseq.Reader) (uint64, error)
}

// EncodeValue encodes a single value with c.
func EncodeValue(c BitCoder, value uint64) (bitseq.Bits, error) {
	b := bitseq.NewBuilder()
	defer b.Finish()

	if err := c.AppendValue(b, value); err != nil {
		return "", err
	}

	return b.Bits(), nil
}

// DecodeValue decodes a single value from the front of bits with c.
func DecodeValue(c BitCoder, bits bitseq.Bits) (uint64, int, error) {
	r := bitseq.NewReader(bits)
	v, err := c.ReadValue(r)
	if err != nil {
		return 0, r.Pos(), err
	}

	return v, r.Pos(), nil
}

// EncodeEach is the default EncodeMany: the concatenation of every value's
// codeword, in order.
func EncodeEach(c ValueCodec, values []uint64) (bitseq.Bits, error) {
	b := bitseq.NewBuilder()
	defer b.Finish()

	bc, direct := c.(BitCoder)
	for i, v := range values {
		if direct {
			if err := bc.AppendValue(b, v); err != nil {
				return "", fmt.Errorf("value %d at index %d: %w", v, i, err)
			}

			continue
		}

		word, err := c.Encode(v)
		if err != nil {
			return "", fmt.Errorf("value %d at index %d: %w", v, i, err)
		}
		b.Append(word)
	}

	return b.Bits(), nil
}

// DecodeEach is the default DecodeMany: decode a value, skip the symbols it
// used and repeat until the input is exhausted.
func DecodeEach(c ValueCodec, bits bitseq.Bits) *Iterator[uint64] {
	if bc, ok := c.(BitCoder); ok {
		return NewIterator(bits, func(r *bitseq.Reader, out []uint64) ([]uint64, error) {
			v, err := bc.ReadValue(r)
			if err != nil {
				return out, err
			}

			return append(out, v), nil
		})
	}

	return NewIterator(bits, func(r *bitseq.Reader, out []uint64) ([]uint64, error) {
		v, n, err := c.Decode(r.Rest())
		if err != nil {
			return out, err
		}
		if err := r.Skip(n); err != nil {
			return out, err
		}

		return append(out, v), nil
	})
}

// DecodeAll drains c.DecodeMany(bits) into a slice.
func DecodeAll(c Codec, bits bitseq.Bits) ([]uint64, error) {
	return c.DecodeMany(bits).Collect()
}
