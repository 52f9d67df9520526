package block

import (
	"fmt"

	"github.com/lagom-nlp/irse/endian"
	"github.com/lagom-nlp/irse/format"
)

// Flag is the first four bytes of a block header.
type Flag struct {
	// Options packs the magic number and option bits, see the masks in
	// const.go. It is always stored little-endian.
	Options uint16

	// CodeType is the integer code of the payload.
	CodeType format.CodeType
	// CompressionType is the compression applied to the packed payload.
	CompressionType format.CompressionType
}

// NewFlag returns a little-endian flag with checksums enabled.
func NewFlag(code format.CodeType, compression format.CompressionType) Flag {
	return Flag{
		Options:         MagicPostingsV1Opt | ChecksumMask,
		CodeType:        code,
		CompressionType: compression,
	}
}

// IsLittleEndian returns whether header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasChecksum returns whether the header carries a payload checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// HasTable returns whether an LLRUN table follows the header.
func (f Flag) HasTable() bool {
	return (f.Options & TableMask) != 0
}

// SetTable marks the presence of an LLRUN table.
func (f *Flag) SetTable(present bool) {
	if present {
		f.Options |= TableMask
	} else {
		f.Options &^= TableMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the engine for the header's byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}

// Validate checks the magic number, reserved bits and enum fields.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicPostingsV1Opt {
		return fmt.Errorf("%w: magic number %#04x", ErrInvalidHeader, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", ErrInvalidHeader)
	}
	if !f.CodeType.IsValid() {
		return fmt.Errorf("%w: code type %d", ErrInvalidHeader, f.CodeType)
	}
	if !f.CompressionType.IsValid() {
		return fmt.Errorf("%w: compression type %d", ErrInvalidHeader, f.CompressionType)
	}
	if f.HasTable() && f.CodeType != format.TypeLLRUN {
		return fmt.Errorf("%w: code table on a %s block", ErrInvalidHeader, f.CodeType)
	}

	return nil
}
