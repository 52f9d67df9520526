package huffman

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/codec"
)

// maxBucket is the bucket of the largest uint64.
const maxBucket = 63

// LLRUN is a Huffman code over the logarithmic buckets of positive integers.
//
// A value n falls into bucket b = floor(log2 n), the range [2^b, 2^(b+1)).
// It is written as the Huffman codeword of b followed by n - 2^b in exactly
// b bits. Buckets are symbols named by their decimal index.
type LLRUN struct {
	code *Code
	// bucket of each leaf, indexed by arena position; -1 for internal nodes.
	buckets []int
}

var (
	_ codec.Codec    = (*LLRUN)(nil)
	_ codec.BitCoder = (*LLRUN)(nil)
)

// Bucket returns floor(log2 n) for n >= 1.
func Bucket(n uint64) int {
	return bits.Len64(n) - 1
}

// TrainLLRUN trains an LLRUN code on a corpus of positive integers.
//
// Every bucket below the largest one seen gets a leaf, with weight zero if
// no value fell into it. When the corpus only holds ones, an empty bucket 1
// is added so that bucket 0 still gets a one-bit codeword.
func TrainLLRUN(corpus []uint64) (*LLRUN, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	var counts [maxBucket + 1]uint64
	var order []int
	top := 0
	for i, n := range corpus {
		if n == 0 {
			return nil, fmt.Errorf("%w: value 0 at index %d", ErrNonPositive, i)
		}

		b := Bucket(n)
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
		top = max(top, b)
	}

	weights := make([]SymbolWeight, 0, top+2)
	for _, b := range order {
		weights = append(weights, SymbolWeight{Symbol: strconv.Itoa(b), Weight: counts[b]})
	}
	for b := 0; b < top; b++ {
		if counts[b] == 0 {
			weights = append(weights, SymbolWeight{Symbol: strconv.Itoa(b)})
		}
	}
	if len(weights) == 1 {
		weights = append(weights, SymbolWeight{Symbol: strconv.Itoa(top + 1)})
	}

	tree, err := TrainWeights(weights)
	if err != nil {
		return nil, err
	}

	return NewLLRUN(tree)
}

// NewLLRUN wraps a tree whose leaves are bucket indices 0 to 63.
func NewLLRUN(tree *Tree) (*LLRUN, error) {
	buckets := make([]int, tree.Len())
	for i := range buckets {
		n := tree.Node(i)
		if !n.IsLeaf() {
			buckets[i] = -1
			continue
		}

		b, err := strconv.Atoi(n.Name)
		if err != nil || b < 0 || b > maxBucket || strconv.Itoa(b) != n.Name {
			return nil, fmt.Errorf("%w: leaf %q", ErrInvalidBucket, n.Name)
		}
		buckets[i] = b
	}

	return &LLRUN{code: NewCode(tree), buckets: buckets}, nil
}

// NewLLRUNFromCanonical rebuilds an LLRUN code from its canonical table.
func NewLLRUNFromCanonical(c Canonical) (*LLRUN, error) {
	tree, err := FromCanonical(c)
	if err != nil {
		return nil, err
	}

	return NewLLRUN(tree)
}

// Tree returns the bucket tree.
func (l *LLRUN) Tree() *Tree {
	return l.code.tree
}

// Canonical returns the canonical table of the bucket code.
func (l *LLRUN) Canonical() Canonical {
	return l.code.tree.Canonical()
}

// AppendValue implements codec.BitCoder.
func (l *LLRUN) AppendValue(b *bitseq.Builder, value uint64) error {
	if value == 0 {
		return fmt.Errorf("%w: llrun needs n >= 1", codec.ErrOutOfRange)
	}

	bucket := Bucket(value)
	word, ok := l.code.Encode(strconv.Itoa(bucket))
	if !ok {
		return fmt.Errorf("%w: bucket %d of value %d", ErrUnknownSymbol, bucket, value)
	}

	b.Append(word)
	b.AppendUint(value, bucket)

	return nil
}

// ReadValue implements codec.BitCoder. An exhausted reader decodes to 0.
func (l *LLRUN) ReadValue(r *bitseq.Reader) (uint64, error) {
	if r.Done() {
		return 0, nil
	}

	leaf, err := l.code.tree.readLeaf(r)
	if err != nil {
		return 0, err
	}

	bucket := l.buckets[leaf]
	offset, err := r.ReadUint(bucket)
	if err != nil {
		return 0, err
	}

	return 1<<bucket | offset, nil
}

// Encode implements codec.Codec.
func (l *LLRUN) Encode(value uint64) (bitseq.Bits, error) {
	return codec.EncodeValue(l, value)
}

// Decode implements codec.Codec. Empty input decodes to (0, 0).
func (l *LLRUN) Decode(bits bitseq.Bits) (uint64, int, error) {
	return codec.DecodeValue(l, bits)
}

// EncodeMany implements codec.Codec.
func (l *LLRUN) EncodeMany(values []uint64) (bitseq.Bits, error) {
	return codec.EncodeEach(l, values)
}

// DecodeMany implements codec.Codec.
func (l *LLRUN) DecodeMany(bits bitseq.Bits) *codec.Iterator[uint64] {
	return codec.DecodeEach(l, bits)
}
