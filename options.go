package irse

import (
	"fmt"

	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
	"github.com/lagom-nlp/irse/internal/options"
)

type codecConfig struct {
	code       format.CodeType
	bucketSize uint64
	corpus     []uint64
	canonical  *huffman.Canonical
}

// CodecOption is a functional option for NewCodec.
type CodecOption = options.Option[*codecConfig]

// WithBucketSize sets the Golomb-Rice bucket size M.
func WithBucketSize(m uint64) CodecOption {
	return options.New(func(c *codecConfig) error {
		if c.code != format.TypeGolombRice {
			return fmt.Errorf("bucket size only applies to %s, not %s", format.TypeGolombRice, c.code)
		}
		if m == 0 {
			return fmt.Errorf("invalid bucket size: %d", m)
		}
		c.bucketSize = m

		return nil
	})
}

// WithTrainingCorpus trains the LLRUN code on corpus.
func WithTrainingCorpus(corpus []uint64) CodecOption {
	return options.New(func(c *codecConfig) error {
		if c.code != format.TypeLLRUN {
			return fmt.Errorf("training corpus only applies to %s, not %s", format.TypeLLRUN, c.code)
		}
		if len(corpus) == 0 {
			return fmt.Errorf("%w: training corpus", huffman.ErrEmptyCorpus)
		}
		c.corpus = corpus

		return nil
	})
}

// WithCanonical rebuilds the LLRUN code from a canonical table, typically
// one read from a block. It takes precedence over WithTrainingCorpus.
func WithCanonical(table huffman.Canonical) CodecOption {
	return options.New(func(c *codecConfig) error {
		if c.code != format.TypeLLRUN {
			return fmt.Errorf("canonical table only applies to %s, not %s", format.TypeLLRUN, c.code)
		}
		if err := table.Validate(); err != nil {
			return err
		}
		c.canonical = &table

		return nil
	})
}
