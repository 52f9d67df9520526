// Package bitseq provides the bit sequence representation shared by every
// integer code in irse.
//
// A Bits value is an immutable string of '0' and '1' symbols. Keeping one
// symbol per byte makes the encodings easy to inspect and compare in tests and
// lets decoders detect symbols that are neither 0 nor 1, which a packed
// representation could never carry.
//
// # Building
//
// Encoders append symbols to a Builder backed by a pooled buffer:
//
//	b := bitseq.NewBuilder()
//	defer b.Finish()
//	b.AppendZeros(3)
//	b.AppendOne()
//	bits := b.Bits() // "0001"
//
// # Reading
//
// Decoders walk a Reader cursor. Every read reports ErrInvalidSymbol for a
// non-binary symbol and ErrTruncated when the sequence ends before the
// requested bits were available:
//
//	r := bitseq.NewReader("00101")
//	v, err := r.ReadUint(5) // 5, nil
//	r.Pos()                 // 5
//
// # Packing
//
// Pack and Unpack convert between Bits and real bytes (most significant bit
// first) so that encoded sequences can be handed to byte-oriented compressors
// and transports.
//
// # Thread Safety
//
// Bits values are immutable and safe for concurrent use. Builder and Reader
// are not; use one per goroutine.
package bitseq
