package codec

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/lagom-nlp/irse/bitseq"
)

// MaxInterpolativeRun caps the length of a single interpolative run. A
// decoder allocates a whole run before reading its interior, and a run of
// consecutive values costs no interior bits.
const MaxInterpolativeRun = 1 << 16

// Interpolative is the binary interpolative code for strictly increasing
// sequences such as document identifiers in a postings list.
//
// A run is written as Gamma(len), Gamma(first) and, for runs of two or more,
// Gamma(last-first). The interior follows in pre-order: the middle element
// of each sub-range is written as its offset from the smallest value it could
// take, in just enough bits to cover every value it could take. Sub-ranges of
// fewer than three elements, and middles with only one possible value, cost
// nothing.
//
// Interpolative is a batch-only code: Encode and Decode return
// ErrUnsupported. DecodeMany accepts any number of concatenated runs.
type Interpolative struct {
	gamma Gamma
}

var _ Codec = Interpolative{}

// NewInterpolative returns a binary interpolative code.
func NewInterpolative() Interpolative {
	return Interpolative{}
}

// Encode returns ErrUnsupported.
func (Interpolative) Encode(uint64) (bitseq.Bits, error) {
	return "", fmt.Errorf("%w: interpolative encodes sequences only", ErrUnsupported)
}

// Decode returns ErrUnsupported.
func (Interpolative) Decode(bitseq.Bits) (uint64, int, error) {
	return 0, 0, fmt.Errorf("%w: interpolative decodes sequences only", ErrUnsupported)
}

// EncodeMany encodes values as one run, or as consecutive runs of at most
// MaxInterpolativeRun values when the input is longer. An empty input
// encodes to the empty sequence.
func (c Interpolative) EncodeMany(values []uint64) (bitseq.Bits, error) {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return "", fmt.Errorf("value %d at index %d: %w", values[i], i, ErrNotMonotonic)
		}
	}

	b := bitseq.NewBuilder()
	defer b.Finish()

	for run := range slices.Chunk(values, MaxInterpolativeRun) {
		if err := c.AppendRun(b, run); err != nil {
			return "", err
		}
	}

	return b.Bits(), nil
}

// AppendRun appends values to b as one run. Calling it repeatedly on the same
// builder produces concatenated runs that DecodeMany reads back in order.
func (c Interpolative) AppendRun(b *bitseq.Builder, values []uint64) error {
	n := len(values)
	if n == 0 {
		return nil
	}
	if n > MaxInterpolativeRun {
		return fmt.Errorf("%w: run of %d values exceeds %d", ErrOutOfRange, n, MaxInterpolativeRun)
	}
	if values[0] == 0 {
		return fmt.Errorf("value 0 at index 0: %w: interpolative needs n >= 1", ErrOutOfRange)
	}
	for i := 1; i < n; i++ {
		if values[i] <= values[i-1] {
			return fmt.Errorf("value %d at index %d: %w", values[i], i, ErrNotMonotonic)
		}
	}

	if err := c.gamma.AppendValue(b, uint64(n)); err != nil {
		return err
	}
	if err := c.gamma.AppendValue(b, values[0]); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	if err := c.gamma.AppendValue(b, values[n-1]-values[0]); err != nil {
		return err
	}

	appendInterior(b, values)

	return nil
}

// DecodeMany returns an iterator that decodes one whole run per step.
func (c Interpolative) DecodeMany(bits bitseq.Bits) *Iterator[uint64] {
	return NewIterator(bits, c.readRun)
}

func (c Interpolative) readRun(r *bitseq.Reader, out []uint64) ([]uint64, error) {
	n, err := c.gamma.ReadValue(r)
	if err != nil {
		return out, err
	}
	if n > MaxInterpolativeRun {
		return out, fmt.Errorf("%w: run of %d values exceeds %d", ErrMalformed, n, MaxInterpolativeRun)
	}

	lo, err := c.gamma.ReadValue(r)
	if err != nil {
		return out, err
	}
	if n == 1 {
		return append(out, lo), nil
	}

	diff, err := c.gamma.ReadValue(r)
	if err != nil {
		return out, err
	}
	hi := lo + diff
	if hi < lo {
		return out, fmt.Errorf("%w: interpolative run bound", ErrOverflow)
	}
	if diff < n-1 {
		return out, fmt.Errorf("%w: %d increasing values cannot fit in [%d, %d]", ErrMalformed, n, lo, hi)
	}

	start := len(out)
	out = slices.Grow(out, int(n))[:start+int(n)]
	run := out[start:]
	run[0], run[n-1] = lo, hi
	if err := readInterior(r, run); err != nil {
		return out[:start], err
	}

	return out, nil
}

// appendInterior writes the middle of values and recurses on both halves,
// each half sharing the middle element as an endpoint.
func appendInterior(b *bitseq.Builder, values []uint64) {
	n := len(values)
	if n < 3 {
		return
	}

	mid := n / 2
	lo, hi := interiorBounds(values, mid)
	if rng := hi - lo + 1; rng > 1 {
		b.AppendUint(values[mid]-lo, bits.Len64(rng-1))
	}

	appendInterior(b, values[:mid+1])
	appendInterior(b, values[mid:])
}

// readInterior fills the interior of run, whose endpoints are already set.
func readInterior(r *bitseq.Reader, run []uint64) error {
	n := len(run)
	if n < 3 {
		return nil
	}

	mid := n / 2
	lo, hi := interiorBounds(run, mid)
	v := lo
	if rng := hi - lo + 1; rng > 1 {
		off, err := r.ReadUint(bits.Len64(rng - 1))
		if err != nil {
			return err
		}
		if off > hi-lo {
			return fmt.Errorf("%w: interpolative offset %d outside range of %d", ErrMalformed, off, rng)
		}
		v += off
	}
	run[mid] = v

	if err := readInterior(r, run[:mid+1]); err != nil {
		return err
	}

	return readInterior(r, run[mid:])
}

// interiorBounds returns the smallest and largest value run[mid] can take
// given the endpoints and strict monotonicity.
func interiorBounds(run []uint64, mid int) (uint64, uint64) {
	n := len(run)
	return run[0] + uint64(mid), run[n-1] - uint64(n-1-mid)
}
