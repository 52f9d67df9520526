package block

import "errors"

var (
	// ErrInvalidHeader is returned when a block header is too short, carries
	// the wrong magic number, or names an unknown code or compression.
	ErrInvalidHeader = errors.New("block: invalid header")
	// ErrInvalidTable is returned when the LLRUN table is missing or corrupt.
	ErrInvalidTable = errors.New("block: invalid code table")
	// ErrInvalidPayload is returned when the decompressed payload does not
	// match the bit length in the header.
	ErrInvalidPayload = errors.New("block: invalid payload")
	// ErrChecksumMismatch is returned when the payload checksum differs from
	// the header.
	ErrChecksumMismatch = errors.New("block: checksum mismatch")
	// ErrCountMismatch is returned when the payload decodes to a different
	// number of values than the header announces.
	ErrCountMismatch = errors.New("block: value count mismatch")
	// ErrTooManyValues is returned when a sequence does not fit a block.
	ErrTooManyValues = errors.New("block: too many values")
)
