package block

import (
	"fmt"
	"math"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/codec"
	"github.com/lagom-nlp/irse/compress"
	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
	"github.com/lagom-nlp/irse/internal/hash"
)

// Block is a parsed block: header, optional LLRUN table and the unpacked
// bit sequence.
type Block struct {
	header      Header
	table       *huffman.Canonical
	bits        bitseq.Bits
	payloadSize int
}

// Parse validates data and unpacks its payload.
//
// The payload is decompressed, checked against the header checksum when one
// is present and unpacked to exactly Header.BitLen bits. Values are not
// decoded until Values or Collect is called.
func Parse(data []byte) (*Block, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	b := &Block{header: h}
	rest := data[HeaderSize:]

	if h.Flag.HasTable() {
		table, n, err := parseTable(rest)
		if err != nil {
			return nil, err
		}
		b.table = &table
		rest = rest[n:]
	} else if h.Flag.CodeType == format.TypeLLRUN && h.Count > 0 {
		return nil, fmt.Errorf("%w: missing", ErrInvalidTable)
	}
	b.payloadSize = len(rest)

	if h.BitLen > uint64(math.MaxInt-7) {
		return nil, fmt.Errorf("%w: bit length %d", ErrInvalidPayload, h.BitLen)
	}
	bits, packed, err := compress.DecompressBits(h.Flag.CompressionType, rest, int(h.BitLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if h.Flag.HasChecksum() {
		if sum := hash.Checksum(packed); sum != h.Checksum {
			return nil, fmt.Errorf("%w: got %#016x, header says %#016x", ErrChecksumMismatch, sum, h.Checksum)
		}
	}
	b.bits = bits

	return b, nil
}

// Header returns the block header.
func (b *Block) Header() Header {
	return b.header
}

// Table returns the LLRUN canonical table, if the block has one.
func (b *Block) Table() (huffman.Canonical, bool) {
	if b.table == nil {
		return huffman.Canonical{}, false
	}

	return *b.table, true
}

// Bits returns the encoded bit sequence.
func (b *Block) Bits() bitseq.Bits {
	return b.bits
}

// Codec returns the integer code that decodes the payload.
func (b *Block) Codec() (codec.Codec, error) {
	return valueCodec(b.header, b.table)
}

// Values returns a lazy iterator over the encoded values.
func (b *Block) Values() (*codec.Iterator[uint64], error) {
	if b.table == nil && b.header.Count == 0 && b.bits.IsEmpty() {
		// Empty LLRUN blocks carry no table; nothing is ever stepped.
		return codec.NewIterator[uint64](b.bits, nil), nil
	}

	c, err := b.Codec()
	if err != nil {
		return nil, err
	}

	return c.DecodeMany(b.bits), nil
}

// Collect decodes every value and checks the count against the header.
func (b *Block) Collect() ([]uint64, error) {
	it, err := b.Values()
	if err != nil {
		return nil, err
	}

	// Dense interpolative runs cost no bits per value, so the header count
	// is only a hint.
	values := make([]uint64, 0, min(int(b.header.Count), b.bits.Len()+1))
	for it.Next() {
		values = append(values, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	if uint64(len(values)) != uint64(b.header.Count) {
		return nil, fmt.Errorf("%w: decoded %d, header says %d", ErrCountMismatch, len(values), b.header.Count)
	}

	return values, nil
}

// Stats reports how much the compression step saved.
func (b *Block) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      b.header.Flag.CompressionType,
		OriginalSize:   int64(bitseq.PackedLen(b.bits.Len())),
		CompressedSize: int64(b.payloadSize),
	}
}

// Decode parses data and returns its values.
func Decode(data []byte) ([]uint64, error) {
	b, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return b.Collect()
}
