package huffman

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/internal/hash"
)

// MaxCodewordLength bounds the codeword lengths accepted in a canonical table.
const MaxCodewordLength = 255

// Canonical is the compact form of a code: symbols in ascending string order
// with the bit length of each one's codeword. The lengths alone determine a
// codebook, so only they need to be stored or transmitted.
type Canonical struct {
	Symbols []string
	Lengths []int
}

// Canonical returns the canonical form of t.
func (t *Tree) Canonical() Canonical {
	cb := t.Codebook()
	symbols := cb.Symbols()
	lengths := make([]int, len(symbols))
	for i, s := range symbols {
		lengths[i] = cb[s].Len()
	}

	return Canonical{Symbols: symbols, Lengths: lengths}
}

// Len returns the number of symbols.
func (c Canonical) Len() int {
	return len(c.Symbols)
}

// Validate checks that the table is well formed. It does not check that the
// lengths are satisfiable; Codebook reports that.
func (c Canonical) Validate() error {
	if len(c.Symbols) != len(c.Lengths) {
		return fmt.Errorf("%w: %d symbols but %d lengths", ErrInvalidCanonical, len(c.Symbols), len(c.Lengths))
	}
	if len(c.Symbols) == 0 {
		return fmt.Errorf("%w: no symbols", ErrInvalidCanonical)
	}

	seen := make(map[string]struct{}, len(c.Symbols))
	for i, s := range c.Symbols {
		if _, ok := seen[s]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		seen[s] = struct{}{}

		l := c.Lengths[i]
		if l < 0 || l > MaxCodewordLength {
			return fmt.Errorf("%w: length %d of %q", ErrInvalidCanonical, l, s)
		}
		if l == 0 && len(c.Symbols) > 1 {
			return fmt.Errorf("%w: empty codeword for %q among %d symbols", ErrInvalidCanonical, s, len(c.Symbols))
		}
	}

	return nil
}

// Codebook assigns codewords to the table.
//
// Symbols are taken by increasing length, then by string. Each gets the
// first codeword of its length, in 0-before-1 order, that does not start
// with a codeword already assigned. The search extends the current path with
// 0 while it is free and backs up to the nearest 0 it can turn into a 1 when
// it is blocked.
func (c Canonical) Codebook() (Codebook, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	order := make([]int, len(c.Symbols))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if d := cmp.Compare(c.Lengths[a], c.Lengths[b]); d != 0 {
			return d
		}
		return cmp.Compare(c.Symbols[a], c.Symbols[b])
	})

	cb := make(Codebook, len(order))
	assigned := make([]bitseq.Bits, 0, len(order))
	for _, i := range order {
		word, err := firstFreeCodeword(assigned, c.Lengths[i])
		if err != nil {
			return nil, fmt.Errorf("%w: no codeword of length %d left for %q", err, c.Lengths[i], c.Symbols[i])
		}
		assigned = append(assigned, word)
		cb[c.Symbols[i]] = word
	}

	return cb, nil
}

func firstFreeCodeword(assigned []bitseq.Bits, length int) (bitseq.Bits, error) {
	path := make([]byte, 0, length)
	for {
		if isBlocked(assigned, path) {
			var ok bool
			if path, ok = nextSibling(path); !ok {
				return "", ErrInvalidCanonical
			}

			continue
		}
		if len(path) == length {
			return bitseq.Bits(path), nil
		}
		path = append(path, bitseq.Zero)
	}
}

// isBlocked reports whether some assigned codeword is a prefix of path.
func isBlocked(assigned []bitseq.Bits, path []byte) bool {
	p := bitseq.Bits(path)
	for _, w := range assigned {
		if p.HasPrefix(w) {
			return true
		}
	}

	return false
}

// nextSibling drops trailing 1s and turns the last 0 into a 1.
func nextSibling(path []byte) ([]byte, bool) {
	for len(path) > 0 && path[len(path)-1] == bitseq.One {
		path = path[:len(path)-1]
	}
	if len(path) == 0 {
		return nil, false
	}
	path[len(path)-1] = bitseq.One

	return path, true
}

// FromCanonical rebuilds a tree from a canonical table.
func FromCanonical(c Canonical) (*Tree, error) {
	cb, err := c.Codebook()
	if err != nil {
		return nil, err
	}

	return FromCodebook(cb)
}

// Fingerprint returns a hash of the table. Producer and consumer can compare
// fingerprints to check they hold the same code.
func (c Canonical) Fingerprint() uint64 {
	return hash.Fingerprint(c.Symbols, c.Lengths)
}
