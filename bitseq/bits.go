package bitseq

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Symbols used in a bit sequence.
const (
	Zero byte = '0'
	One  byte = '1'
)

var (
	// ErrInvalidSymbol is returned when a sequence contains a symbol other than '0' or '1'.
	ErrInvalidSymbol = errors.New("bitseq: invalid symbol")

	// ErrTruncated is returned when a sequence ends before the requested bits were read.
	ErrTruncated = errors.New("bitseq: unexpected end of bit sequence")

	// ErrWidth is returned when a fixed-width field is wider than 64 bits or negative.
	ErrWidth = errors.New("bitseq: invalid field width")
)

// Bits is an ordered, immutable sequence of binary symbols.
//
// The zero value is the empty sequence.
type Bits string

// FromString validates s and returns it as a bit sequence.
func FromString(s string) (Bits, error) {
	b := Bits(s)
	if err := b.Validate(); err != nil {
		return "", err
	}

	return b, nil
}

// MustParse is like FromString but panics on an invalid symbol.
// It simplifies literals in tests and examples.
func MustParse(s string) Bits {
	b, err := FromString(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Len returns the number of symbols in the sequence.
func (b Bits) Len() int {
	return len(b)
}

// IsEmpty reports whether the sequence has no symbols.
func (b Bits) IsEmpty() bool {
	return len(b) == 0
}

// Slice returns the symbols in [i, j).
func (b Bits) Slice(i, j int) Bits {
	return b[i:j]
}

// From returns the symbols starting at i.
func (b Bits) From(i int) Bits {
	return b[i:]
}

// String returns the symbols as a plain string.
func (b Bits) String() string {
	return string(b)
}

// Validate returns an error wrapping ErrInvalidSymbol for the first symbol
// that is neither '0' nor '1'.
func (b Bits) Validate() error {
	for i := 0; i < len(b); i++ {
		if c := b[i]; c != Zero && c != One {
			return invalidSymbol(c, i)
		}
	}

	return nil
}

// HasPrefix reports whether p is a prefix of b.
func (b Bits) HasPrefix(p Bits) bool {
	return strings.HasPrefix(string(b), string(p))
}

// Concat joins sequences in order.
func Concat(parts ...Bits) Bits {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(string(p))
	}

	return Bits(sb.String())
}

// Binary returns the shortest binary representation of v, most significant
// bit first. Zero is represented as "0".
func Binary(v uint64) Bits {
	return Uint(v, BinaryLen(v))
}

// Uint returns v as a fixed-width field of width symbols, zero-padded on the
// left. Bits of v above width are dropped.
func Uint(v uint64, width int) Bits {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = Zero + byte(v&1)
		v >>= 1
	}

	return Bits(buf)
}

// BinaryLen returns the number of symbols in the shortest binary
// representation of v. It differs from bits.Len64 only for zero, which takes
// one symbol.
func BinaryLen(v uint64) int {
	if v == 0 {
		return 1
	}

	return bits.Len64(v)
}

func invalidSymbol(c byte, pos int) error {
	return fmt.Errorf("%w %q at position %d", ErrInvalidSymbol, c, pos)
}
