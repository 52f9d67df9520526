// Package irse implements the integer codes used to compress inverted index
// postings: unary, Elias gamma, delta and omega, variable byte, Golomb-Rice,
// Simple-9, binary interpolative and Huffman-based LLRUN.
//
// Values are positive integers. A posting list is usually turned into d-gaps
// with ToGaps before it is encoded; interpolative coding is the exception and
// takes the strictly increasing document ids themselves.
//
// # Basic Usage
//
// Encoding a single sequence with a chosen code:
//
//	c, _ := irse.NewCodec(format.TypeGamma)
//	bits, _ := c.EncodeMany([]uint64{3, 1, 4, 1, 5})
//	values, _ := codec.DecodeAll(c, bits)
//
// Packing a posting list into bytes for transmission:
//
//	data, _ := irse.EncodePostings(format.TypeGolombRice, ids,
//	    block.WithBucketSize(8),
//	    block.WithCompression(format.CompressionNone),
//	)
//	ids, _ = irse.DecodePostings(data)
//
// # Package Structure
//
// This package holds thin wrappers over the codec, huffman and block
// packages. Use those packages directly for streaming decode, custom
// Huffman codes or access to block headers.
package irse

import (
	"fmt"

	"github.com/lagom-nlp/irse/block"
	"github.com/lagom-nlp/irse/codec"
	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
	"github.com/lagom-nlp/irse/internal/options"
)

// NewCodec returns the integer code for code.
//
// Golomb-Rice needs WithBucketSize. LLRUN needs either WithTrainingCorpus or
// WithCanonical; the other codes take no options.
//
// Example:
//
//	c, err := irse.NewCodec(format.TypeLLRUN, irse.WithTrainingCorpus(gaps))
func NewCodec(code format.CodeType, opts ...CodecOption) (codec.Codec, error) {
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid code type: %s", code)
	}

	cfg := &codecConfig{code: code}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch code {
	case format.TypeUnary:
		return codec.NewUnary(), nil
	case format.TypeGamma:
		return codec.NewGamma(), nil
	case format.TypeDelta:
		return codec.NewDelta(), nil
	case format.TypeOmega:
		return codec.NewOmega(), nil
	case format.TypeVByte:
		return codec.NewVByte(), nil
	case format.TypeGolombRice:
		if cfg.bucketSize == 0 {
			return nil, fmt.Errorf("%w: %s needs WithBucketSize", codec.ErrInvalidBucketSize, code)
		}
		c, err := codec.NewGolombRice(cfg.bucketSize)
		if err != nil {
			return nil, err
		}
		return c, nil
	case format.TypeSimple9:
		return codec.NewSimple9(), nil
	case format.TypeInterpolative:
		return codec.NewInterpolative(), nil
	case format.TypeLLRUN:
		l, err := cfg.llrun()
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	return nil, fmt.Errorf("invalid code type: %s", code)
}

func (c *codecConfig) llrun() (*huffman.LLRUN, error) {
	switch {
	case c.canonical != nil:
		return huffman.NewLLRUNFromCanonical(*c.canonical)
	case c.corpus != nil:
		return huffman.TrainLLRUN(c.corpus)
	default:
		return nil, fmt.Errorf("%s needs WithTrainingCorpus or WithCanonical", format.TypeLLRUN)
	}
}

// EncodePostings encodes a posting list of strictly increasing document ids
// into a block.
//
// The ids are turned into d-gaps first, except for interpolative coding,
// which encodes them as they are.
func EncodePostings(code format.CodeType, ids []uint64, opts ...block.EncoderOption) ([]byte, error) {
	values := ids
	if code != format.TypeInterpolative {
		var err error
		if values, err = ToGaps(ids); err != nil {
			return nil, err
		}
	}

	return block.Encode(code, values, opts...)
}

// DecodePostings reverses EncodePostings and returns the document ids.
func DecodePostings(data []byte) ([]uint64, error) {
	b, err := block.Parse(data)
	if err != nil {
		return nil, err
	}

	values, err := b.Collect()
	if err != nil {
		return nil, err
	}
	if b.Header().Flag.CodeType == format.TypeInterpolative {
		return values, nil
	}

	return FromGaps(values)
}
