package irse

import (
	"fmt"

	"github.com/lagom-nlp/irse/codec"
)

// ToGaps turns strictly increasing positive document ids into d-gaps. The
// first gap is the first id itself, so every gap is at least 1.
func ToGaps(ids []uint64) ([]uint64, error) {
	gaps := make([]uint64, len(ids))

	var prev uint64
	for i, id := range ids {
		if id <= prev {
			if i == 0 {
				return nil, fmt.Errorf("%w: document id 0", codec.ErrOutOfRange)
			}
			return nil, fmt.Errorf("%w: id %d at %d follows %d", codec.ErrNotMonotonic, id, i, prev)
		}
		gaps[i] = id - prev
		prev = id
	}

	return gaps, nil
}

// FromGaps turns d-gaps back into document ids.
func FromGaps(gaps []uint64) ([]uint64, error) {
	ids := make([]uint64, len(gaps))

	var sum uint64
	for i, g := range gaps {
		if g == 0 {
			return nil, fmt.Errorf("%w: zero gap at %d", codec.ErrOutOfRange, i)
		}
		next := sum + g
		if next < sum {
			return nil, fmt.Errorf("%w: document id at %d", codec.ErrOverflow, i)
		}
		ids[i] = next
		sum = next
	}

	return ids, nil
}
