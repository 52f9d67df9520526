package block

import (
	"fmt"

	"github.com/lagom-nlp/irse/compress"
	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
	"github.com/lagom-nlp/irse/internal/hash"
	"github.com/lagom-nlp/irse/internal/options"
)

// Encode encodes values with the given code and wraps the result in a block.
//
// LLRUN blocks train a code on values unless WithLLRUN supplies one; either
// way the block carries the canonical table and the payload is written with
// the canonical codewords, which are what a decoder can rebuild.
func Encode(code format.CodeType, values []uint64, opts ...EncoderOption) ([]byte, error) {
	cfg, err := newEncoderConfig(code)
	if err != nil {
		return nil, err
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if uint64(len(values)) > MaxValueCount {
		return nil, fmt.Errorf("%w: %d", ErrTooManyValues, len(values))
	}

	h := cfg.header
	table, err := cfg.table(values)
	if err != nil {
		return nil, err
	}
	h.Flag.SetTable(table != nil)

	c, err := valueCodec(h, table)
	if err != nil {
		return nil, err
	}

	bits, err := c.EncodeMany(values)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", code, err)
	}

	payload, packed, err := compress.CompressBits(h.Flag.CompressionType, bits)
	if err != nil {
		return nil, err
	}

	h.Count = uint32(len(values))
	h.BitLen = uint64(bits.Len())
	if h.Flag.HasChecksum() {
		h.Checksum = hash.Checksum(packed)
	}

	size := HeaderSize + len(payload)
	if table != nil {
		size += 1 + table.Len()*TableEntrySize
	}

	out := h.AppendTo(make([]byte, 0, size))
	if table != nil {
		if out, err = appendTable(out, *table); err != nil {
			return nil, err
		}
	}

	return append(out, payload...), nil
}

// table returns the canonical LLRUN table to embed, or nil for other codes
// and for an empty LLRUN block.
func (c *EncoderConfig) table(values []uint64) (*huffman.Canonical, error) {
	if c.header.Flag.CodeType != format.TypeLLRUN {
		return nil, nil
	}

	l := c.llrun
	if l == nil {
		if len(values) == 0 {
			return nil, nil
		}

		var err error
		if l, err = huffman.TrainLLRUN(values); err != nil {
			return nil, fmt.Errorf("train llrun: %w", err)
		}
	}

	canon := l.Canonical()

	return &canon, nil
}
