package block

import (
	"fmt"

	"github.com/lagom-nlp/irse/format"
)

// Header is the fixed-size section at the start of every block.
type Header struct {
	// Flag is a packed field for options, code and compression.
	Flag Flag // byte offset 0-3
	// Count is the number of values encoded in the payload.
	Count uint32 // byte offset 4-7
	// BitLen is the length of the encoded bit sequence before packing.
	BitLen uint64 // byte offset 8-15
	// BucketSize is the Golomb-Rice bucket size M, zero for other codes.
	BucketSize uint64 // byte offset 16-23
	// Checksum is the xxHash64 of the packed, uncompressed payload.
	Checksum uint64 // byte offset 24-31
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidHeader, len(data), HeaderSize)
	}

	// Options are little-endian so the endianness bit can be read first.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.CodeType = format.CodeType(data[2])
	h.Flag.CompressionType = format.CompressionType(data[3])

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.BitLen = engine.Uint64(data[8:16])
	h.BucketSize = engine.Uint64(data[16:24])
	h.Checksum = engine.Uint64(data[24:32])

	return h.Flag.Validate()
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	buf = append(buf, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	buf = append(buf, byte(h.Flag.CodeType), byte(h.Flag.CompressionType))
	buf = engine.AppendUint32(buf, h.Count)
	buf = engine.AppendUint64(buf, h.BitLen)
	buf = engine.AppendUint64(buf, h.BucketSize)
	buf = engine.AppendUint64(buf, h.Checksum)

	return buf
}

// ParseHeader parses a Header from the front of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, want at least %d", ErrInvalidHeader, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
