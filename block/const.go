package block

import "math"

const (
	// Bit masks of Flag.Options
	EndiannessMask   = 0x0001 // 0=little, 1=big (bit 0)
	ChecksumMask     = 0x0002 // payload checksum present (bit 1)
	TableMask        = 0x0004 // LLRUN table follows the header (bit 2)
	ReservedBitsMask = 0x0008 // must be zero (bit 3)
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicPostingsV1Opt identifies version 1 of the block layout.
	MagicPostingsV1Opt = 0x1E50
)

const (
	HeaderSize     = 32             // fixed header size in bytes
	TableEntrySize = 2              // bucket byte + codeword length byte
	MaxTableLen    = 64             // one entry per possible bucket
	MaxValueCount  = math.MaxUint32 // values per block
)
