package huffman

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lagom-nlp/irse/bitseq"
)

// Codebook maps every symbol of a code to its codeword.
type Codebook map[string]bitseq.Bits

// Symbols returns the symbols in ascending string order.
func (cb Codebook) Symbols() []string {
	return slices.Sorted(maps.Keys(cb))
}

// Codebook returns the codeword of every leaf: the path of 0 (left) and
// 1 (right) steps from the root. A single-leaf tree maps its symbol to the
// empty codeword.
func (t *Tree) Codebook() Codebook {
	cb := make(Codebook, t.leaves)
	t.Walk(func(path bitseq.Bits, n Node) bool {
		if n.IsLeaf() {
			cb[n.Name] = path
		}
		return true
	})

	return cb
}

type codeEntry struct {
	symbol string
	word   bitseq.Bits
}

// FromCodebook rebuilds the tree that a codebook describes by splitting the
// entries on their first bit and recursing. Every node of the result has
// weight zero.
//
// The codebook must be prefix-free and complete: each internal node needs
// both children.
func FromCodebook(cb Codebook) (*Tree, error) {
	if len(cb) == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidCodebook)
	}

	entries := make([]codeEntry, 0, len(cb))
	for _, s := range cb.Symbols() {
		word := cb[s]
		if err := word.Validate(); err != nil {
			return nil, fmt.Errorf("codeword of %q: %w", s, err)
		}
		entries = append(entries, codeEntry{symbol: s, word: word})
	}

	t := newTree(2*len(entries) - 1)
	root, err := t.build(entries, 0)
	if err != nil {
		return nil, err
	}
	t.root = root

	return t, nil
}

func (t *Tree) build(entries []codeEntry, depth int) (int, error) {
	if len(entries) == 1 && entries[0].word.Len() == depth {
		return t.addLeaf(entries[0].symbol, 0), nil
	}

	var zeros, ones []codeEntry
	for _, e := range entries {
		if e.word.Len() == depth {
			return 0, fmt.Errorf("%w: codeword %q of %q is a prefix of another codeword",
				ErrInvalidCodebook, e.word, e.symbol)
		}
		if e.word[depth] == bitseq.Zero {
			zeros = append(zeros, e)
		} else {
			ones = append(ones, e)
		}
	}

	if len(zeros) == 0 || len(ones) == 0 {
		return 0, fmt.Errorf("%w: unused branch below %q", ErrInvalidCodebook, entries[0].word[:depth])
	}

	left, err := t.build(zeros, depth+1)
	if err != nil {
		return 0, err
	}
	right, err := t.build(ones, depth+1)
	if err != nil {
		return 0, err
	}

	return t.addInternal(left, right), nil
}
