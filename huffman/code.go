package huffman

import (
	"fmt"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/codec"
)

// Code encodes and decodes symbols with a Huffman tree.
//
// A Code is read-only and safe for concurrent use.
type Code struct {
	tree *Tree
	book Codebook
}

// NewCode returns a Code backed by tree.
func NewCode(tree *Tree) *Code {
	return &Code{tree: tree, book: tree.Codebook()}
}

// Tree returns the underlying tree.
func (c *Code) Tree() *Tree {
	return c.tree
}

// Codebook returns the codebook. Callers must not modify it.
func (c *Code) Codebook() Codebook {
	return c.book
}

// Encode returns the codeword of symbol. The second result is false when
// the symbol is not in the code.
func (c *Code) Encode(symbol string) (bitseq.Bits, bool) {
	w, ok := c.book[symbol]
	return w, ok
}

// Decode walks the tree from the root along bits and returns the symbol of
// the leaf reached and the number of bits consumed. Input that ends before a
// leaf is reached yields ErrTruncated.
func (c *Code) Decode(bits bitseq.Bits) (string, int, error) {
	r := bitseq.NewReader(bits)
	i, err := c.tree.readLeaf(r)
	if err != nil {
		return "", r.Pos(), err
	}

	return c.tree.nodes[i].Name, r.Pos(), nil
}

// EncodeMany concatenates the codewords of symbols.
func (c *Code) EncodeMany(symbols []string) (bitseq.Bits, error) {
	b := bitseq.NewBuilder()
	defer b.Finish()

	for i, s := range symbols {
		w, ok := c.book[s]
		if !ok {
			return "", fmt.Errorf("%w: %q at index %d", ErrUnknownSymbol, s, i)
		}
		b.Append(w)
	}

	return b.Bits(), nil
}

// DecodeMany returns a lazy iterator over the symbols in bits.
//
// A single-leaf tree has an empty codeword, so decoding non-empty input with
// it stops with codec.ErrNoProgress.
func (c *Code) DecodeMany(bits bitseq.Bits) *codec.Iterator[string] {
	return codec.NewIterator(bits, func(r *bitseq.Reader, out []string) ([]string, error) {
		i, err := c.tree.readLeaf(r)
		if err != nil {
			return out, err
		}

		return append(out, c.tree.nodes[i].Name), nil
	})
}
