package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of a byte payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint hashes an ordered list of (symbol, length) pairs.
//
// Every symbol is followed by a zero byte and its length as a uvarint, so
// ("ab", 1) and ("a", 98) never collide by concatenation and lengths of any
// size stay distinct.
func Fingerprint(symbols []string, lengths []int) uint64 {
	d := xxhash.New()
	var scratch [1 + binary.MaxVarintLen64]byte
	for i, sym := range symbols {
		_, _ = d.WriteString(sym)
		rec := binary.AppendUvarint(append(scratch[:0], 0), uint64(lengths[i]))
		_, _ = d.Write(rec)
	}

	return d.Sum64()
}
