package codec

import (
	"errors"

	"github.com/lagom-nlp/irse/bitseq"
)

var (
	// ErrInvalidSymbol is returned when a decoder meets a symbol other than '0' or '1'.
	ErrInvalidSymbol = bitseq.ErrInvalidSymbol

	// ErrTruncated is returned when the input ends before a codeword does.
	ErrTruncated = bitseq.ErrTruncated

	// ErrUnsupported is returned by single-value operations of batch-only codes.
	ErrUnsupported = errors.New("codec: operation not supported")

	// ErrOutOfRange is returned when a value cannot be represented by a code.
	ErrOutOfRange = errors.New("codec: value out of range")

	// ErrOverflow is returned when a decoded value does not fit in 64 bits.
	ErrOverflow = errors.New("codec: decoded value overflows 64 bits")

	// ErrMalformed is returned when a codeword is structurally impossible.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrNotMonotonic is returned when an ordered code receives unordered input.
	ErrNotMonotonic = errors.New("codec: values must be strictly increasing")

	// ErrInvalidBucketSize is returned when a Golomb-Rice bucket size is zero.
	ErrInvalidBucketSize = errors.New("codec: bucket size must be at least 1")

	// ErrNoProgress is returned when a decoder produced a value without consuming any bit.
	ErrNoProgress = errors.New("codec: decoder consumed no input")
)
