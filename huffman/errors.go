package huffman

import "errors"

var (
	// ErrEmptyCorpus is returned when training on no symbols.
	ErrEmptyCorpus = errors.New("huffman: empty training corpus")
	// ErrDuplicateSymbol is returned when a symbol is weighted twice.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")
	// ErrInvalidCodebook is returned for codebooks that are empty, not
	// prefix-free, or leave a branch of the tree unused.
	ErrInvalidCodebook = errors.New("huffman: invalid codebook")
	// ErrInvalidCanonical is returned for canonical tables with mismatched or
	// over-subscribed lengths.
	ErrInvalidCanonical = errors.New("huffman: invalid canonical codebook")
	// ErrUnknownSymbol is returned by batch encoders for symbols outside the
	// codebook.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")
	// ErrNonPositive is returned when LLRUN is trained on a zero value.
	ErrNonPositive = errors.New("huffman: training value must be positive")
	// ErrInvalidBucket is returned when an LLRUN tree has a leaf that is not
	// a bucket index.
	ErrInvalidBucket = errors.New("huffman: invalid bucket")
)
