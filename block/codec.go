package block

import (
	"fmt"

	"github.com/lagom-nlp/irse/codec"
	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
)

// valueCodec returns the integer code a header describes. LLRUN blocks need
// their table.
func valueCodec(h Header, table *huffman.Canonical) (codec.Codec, error) {
	switch h.Flag.CodeType {
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
		c, err := codec.NewGolombRice(h.BucketSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
		}
		return c, nil
	case format.TypeSimple9:
		return codec.NewSimple9(), nil
	case format.TypeInterpolative:
		return codec.NewInterpolative(), nil
	case format.TypeLLRUN:
		if table == nil {
			return nil, fmt.Errorf("%w: missing", ErrInvalidTable)
		}
		l, err := huffman.NewLLRUNFromCanonical(*table)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: code type %d", ErrInvalidHeader, h.Flag.CodeType)
	}
}
