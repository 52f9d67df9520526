package block

import (
	"fmt"
	"strconv"

	"github.com/lagom-nlp/irse/huffman"
)

// appendTable writes an LLRUN canonical table: one entry count byte, then a
// (bucket, codeword length) byte pair per entry.
func appendTable(buf []byte, c huffman.Canonical) ([]byte, error) {
	if c.Len() == 0 || c.Len() > MaxTableLen {
		return nil, fmt.Errorf("%w: %d entries", ErrInvalidTable, c.Len())
	}

	buf = append(buf, byte(c.Len()))
	for i, s := range c.Symbols {
		bucket, err := strconv.Atoi(s)
		if err != nil || bucket < 0 || bucket >= MaxTableLen {
			return nil, fmt.Errorf("%w: bucket %q", ErrInvalidTable, s)
		}
		buf = append(buf, byte(bucket), byte(c.Lengths[i]))
	}

	return buf, nil
}

// parseTable reads a table written by appendTable and returns it with the
// number of bytes consumed.
func parseTable(data []byte) (huffman.Canonical, int, error) {
	if len(data) == 0 {
		return huffman.Canonical{}, 0, fmt.Errorf("%w: missing", ErrInvalidTable)
	}

	n := int(data[0])
	size := 1 + n*TableEntrySize
	if n == 0 || n > MaxTableLen {
		return huffman.Canonical{}, 0, fmt.Errorf("%w: %d entries", ErrInvalidTable, n)
	}
	if len(data) < size {
		return huffman.Canonical{}, 0, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidTable, len(data), size)
	}

	c := huffman.Canonical{
		Symbols: make([]string, n),
		Lengths: make([]int, n),
	}
	for i := range n {
		entry := data[1+i*TableEntrySize:]
		if entry[0] >= MaxTableLen {
			return huffman.Canonical{}, 0, fmt.Errorf("%w: bucket %d", ErrInvalidTable, entry[0])
		}
		c.Symbols[i] = strconv.Itoa(int(entry[0]))
		c.Lengths[i] = int(entry[1])
	}

	return c, size, nil
}
