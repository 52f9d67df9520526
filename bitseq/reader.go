package bitseq

import "fmt"

// Reader is a forward-only cursor over a bit sequence.
//
// The zero value reads from the empty sequence.
type Reader struct {
	bits Bits
	pos  int
}

// NewReader returns a Reader positioned at the first symbol of b.
func NewReader(b Bits) *Reader {
	return &Reader{bits: b}
}

// Pos returns the number of symbols consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of symbols not yet consumed.
func (r *Reader) Remaining() int {
	return len(r.bits) - r.pos
}

// Done reports whether every symbol has been consumed.
func (r *Reader) Done() bool {
	return r.pos >= len(r.bits)
}

// Rest returns the unconsumed suffix.
func (r *Reader) Rest() Bits {
	return r.bits[r.pos:]
}

// PeekBit returns the next bit (0 or 1) without consuming it.
func (r *Reader) PeekBit() (uint8, error) {
	if r.pos >= len(r.bits) {
		return 0, ErrTruncated
	}

	return symbolAt(r.bits, r.pos)
}

// ReadBit consumes and returns the next bit (0 or 1).
func (r *Reader) ReadBit() (uint8, error) {
	bit, err := r.PeekBit()
	if err != nil {
		return 0, err
	}
	r.pos++

	return bit, nil
}

// ReadUint consumes width symbols and returns them as an unsigned integer,
// most significant bit first. A width of zero reads nothing and returns 0.
//
// On error the cursor is left where the failing symbol was found.
func (r *Reader) ReadUint(width int) (uint64, error) {
	if width < 0 || width > 64 {
		return 0, fmt.Errorf("%w: %d", ErrWidth, width)
	}

	var v uint64
	for i := 0; i < width; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v = v<<1 | uint64(bit)
	}

	return v, nil
}

// Skip advances the cursor by n symbols without validating them.
func (r *Reader) Skip(n int) error {
	if n > r.Remaining() {
		r.pos = len(r.bits)
		return ErrTruncated
	}
	r.pos += n

	return nil
}

func symbolAt(b Bits, pos int) (uint8, error) {
	switch c := b[pos]; c {
	case Zero:
		return 0, nil
	case One:
		return 1, nil
	default:
		return 0, invalidSymbol(c, pos)
	}
}
