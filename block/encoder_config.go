package block

import (
	"fmt"

	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
	"github.com/lagom-nlp/irse/internal/options"
)

// DefaultBucketSize is the Golomb-Rice bucket size used when none is given.
const DefaultBucketSize = 64

// EncoderConfig holds the settings of one Encode call.
type EncoderConfig struct {
	header Header
	llrun  *huffman.LLRUN
}

func newEncoderConfig(code format.CodeType) (*EncoderConfig, error) {
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid code type: %s", code)
	}

	c := &EncoderConfig{header: Header{Flag: NewFlag(code, format.CompressionZstd)}}
	if code == format.TypeGolombRice {
		c.header.BucketSize = DefaultBucketSize
	}

	return c, nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("invalid payload compression: %v", comp)
	}
	c.header.Flag.CompressionType = comp

	return nil
}

func (c *EncoderConfig) setBucketSize(m uint64) error {
	if c.header.Flag.CodeType != format.TypeGolombRice {
		return fmt.Errorf("bucket size only applies to %s, not %s", format.TypeGolombRice, c.header.Flag.CodeType)
	}
	if m == 0 {
		return fmt.Errorf("invalid bucket size: %d", m)
	}
	c.header.BucketSize = m

	return nil
}

func (c *EncoderConfig) setLLRUN(l *huffman.LLRUN) error {
	if c.header.Flag.CodeType != format.TypeLLRUN {
		return fmt.Errorf("llrun code only applies to %s, not %s", format.TypeLLRUN, c.header.Flag.CodeType)
	}
	if l == nil {
		return fmt.Errorf("llrun code is nil")
	}
	c.llrun = l

	return nil
}

// EncoderOption is a functional option for Encode.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the compression of the packed payload. Zstd is the
// default.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes header fields little-endian. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian writes header fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithBigEndian()
	})
}

// WithChecksum enables or disables the payload checksum. It is enabled by
// default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetChecksum(enabled)
	})
}

// WithBucketSize sets the Golomb-Rice bucket size. Only valid for
// format.TypeGolombRice blocks.
func WithBucketSize(m uint64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setBucketSize(m)
	})
}

// WithLLRUN encodes with an already trained LLRUN code instead of training
// one on the block's values. Only valid for format.TypeLLRUN blocks.
func WithLLRUN(l *huffman.LLRUN) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setLLRUN(l)
	})
}
