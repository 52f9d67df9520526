package codec

import (
	"fmt"
	"math/bits"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/internal/pool"
)

const (
	simple9WordBits     = 32
	simple9SelectorBits = 4
	simple9PayloadBits  = simple9WordBits - simple9SelectorBits

	// MaxSimple9Value is the largest value a Simple-9 word can hold.
	MaxSimple9Value = 1<<simple9PayloadBits - 1
)

// simple9Slots lists the allowed slot counts in increasing order.
var simple9Slots = [...]int{1, 2, 3, 4, 5, 7, 9, 14, 28}

// Simple9 packs runs of values into 32-bit words.
//
// Each word is a 4-bit selector followed by 28 payload bits split into k
// equal fields of width 28/k, where k is one of 1, 2, 3, 4, 5, 7, 9, 14 or 28.
// The selector holds k itself, except 28 which is written as 0. A word that
// is not full is terminated by a zero field, which is why values must be
// positive.
//
// Simple9 is a batch-only code: Encode and Decode return ErrUnsupported.
type Simple9 struct{}

var _ Codec = Simple9{}

// NewSimple9 returns a Simple-9 code.
func NewSimple9() Simple9 {
	return Simple9{}
}

// Encode returns ErrUnsupported.
func (Simple9) Encode(uint64) (bitseq.Bits, error) {
	return "", fmt.Errorf("%w: simple-9 encodes sequences only", ErrUnsupported)
}

// Decode returns ErrUnsupported.
func (Simple9) Decode(bitseq.Bits) (uint64, int, error) {
	return 0, 0, fmt.Errorf("%w: simple-9 decodes sequences only", ErrUnsupported)
}

// EncodeMany packs values greedily.
//
// Values are buffered under a preferred slot count that starts at 28. A value
// too wide for the current fields lowers the slot count; if the buffer then
// holds more values than the new count allows, everything before the new
// value is flushed first under the old count. A full buffer is flushed and
// the slot count goes back to 28.
func (Simple9) EncodeMany(values []uint64) (bitseq.Bits, error) {
	b := bitseq.NewBuilder()
	defer b.Finish()

	buf, release := pool.GetUint64Slice(simple9PayloadBits)
	defer release()

	pending := buf[:0]
	slots := simple9PayloadBits
	for i, v := range values {
		if v == 0 || v > MaxSimple9Value {
			return "", fmt.Errorf("value %d at index %d: %w: simple-9 needs 1 <= n <= %d",
				v, i, ErrOutOfRange, MaxSimple9Value)
		}

		pending = append(pending, v)
		if bits.Len64(v) > simple9PayloadBits/slots {
			next := simple9SlotsFor(v)
			if len(pending) > next {
				writeSimple9Word(b, slots, pending[:len(pending)-1])
				pending[0] = v
				pending = pending[:1]
			}
			slots = next
		}

		if len(pending) >= slots {
			writeSimple9Word(b, slots, pending[:slots])
			pending = pending[:0]
			slots = simple9PayloadBits
		}
	}

	if len(pending) > 0 {
		writeSimple9Word(b, slots, pending)
	}

	return b.Bits(), nil
}

// DecodeMany returns an iterator that yields the values of one word per step.
func (Simple9) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return NewIterator(bits, readSimple9Word)
}

// simple9SlotsFor returns the largest slot count whose field width holds v.
func simple9SlotsFor(v uint64) int {
	n := bits.Len64(v)
	for i := len(simple9Slots) - 1; i > 0; i-- {
		if simple9PayloadBits/simple9Slots[i] >= n {
			return simple9Slots[i]
		}
	}

	return simple9Slots[0]
}

func simple9Selector(slots int) uint64 {
	if slots == simple9PayloadBits {
		return 0
	}

	return uint64(slots)
}

func writeSimple9Word(b *bitseq.Builder, slots int, values []uint64) {
	width := simple9PayloadBits / slots

	b.AppendUint(simple9Selector(slots), simple9SelectorBits)
	for _, v := range values {
		b.AppendUint(v, width)
	}
	b.AppendZeros(simple9PayloadBits - len(values)*width)
}

func readSimple9Word(r *bitseq.Reader, out []uint64) ([]uint64, error) {
	sel, err := r.ReadUint(simple9SelectorBits)
	if err != nil {
		return out, err
	}

	slots := int(sel)
	switch slots {
	case 0:
		slots = simple9PayloadBits
	case 1, 2, 3, 4, 5, 7, 9, 14:
	default:
		return out, fmt.Errorf("%w: simple-9 selector %d", ErrMalformed, sel)
	}

	width := simple9PayloadBits / slots
	used := 0
	for range slots {
		v, err := r.ReadUint(width)
		if err != nil {
			return out, err
		}
		used += width
		if v == 0 {
			break
		}
		out = append(out, v)
	}

	if _, err := r.ReadUint(simple9PayloadBits - used); err != nil {
		return out, err
	}

	return out, nil
}
