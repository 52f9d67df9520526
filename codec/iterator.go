package codec

import (
	"fmt"
	"iter"

	"github.com/lagom-nlp/irse/bitseq"
)

// StepFunc decodes the next group of values from r and appends them to out.
//
// Single-value codes append one value per step; word- or run-based codes
// append everything the word or run holds. A step must consume at least one
// symbol.
type StepFunc[T any] func(r *bitseq.Reader, out []T) ([]T, error)

// Iterator is a lazy cursor over the values held in a bit sequence.
//
// Values are decoded only when requested. An Iterator cannot be rewound;
// decoding the same immutable sequence again requires a fresh Iterator, which
// always yields the same values.
//
// Typical use:
//
//	it := c.DecodeMany(bits)
//	for it.Next() {
//	    use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
type Iterator[T any] struct {
	r       *bitseq.Reader
	step    StepFunc[T]
	pending []T
	head    int
	cur     T
	err     error
	done    bool
}

// NewIterator returns an Iterator that decodes bits with step.
func NewIterator[T any](bits bitseq.Bits, step StepFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		r:    bitseq.NewReader(bits),
		step: step,
	}
}

// Next advances to the next value. It returns false when the input is
// exhausted or a decode error occurred; Err tells the two apart.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}

	for it.head >= len(it.pending) {
		if it.r.Done() {
			it.done = true
			return false
		}

		start := it.r.Pos()
		out, err := it.step(it.r, it.pending[:0])
		if err != nil {
			it.fail(start, err)
			return false
		}
		if it.r.Pos() == start {
			it.fail(start, ErrNoProgress)
			return false
		}

		it.pending = out
		it.head = 0
	}

	it.cur = it.pending[it.head]
	it.head++

	return true
}

func (it *Iterator[T]) fail(pos int, err error) {
	it.err = fmt.Errorf("decode at bit %d: %w", pos, err)
	it.done = true
	it.pending = it.pending[:0]
	it.head = 0
}

// Value returns the value produced by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns the first decode error, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Pos returns the number of symbols consumed so far.
func (it *Iterator[T]) Pos() int {
	return it.r.Pos()
}

// All returns the remaining values as an iter.Seq. Iteration stops early on a
// decode error; check Err afterwards.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iterator[T]) Collect() ([]T, error) {
	var out []T
	for it.Next() {
		out = append(out, it.cur)
	}

	return out, it.err
}
