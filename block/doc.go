// Package block wraps one encoded integer sequence for transmission.
//
// A block is a 32-byte header, an optional LLRUN code table and the packed
// bit payload, compressed with one of the compress codecs:
//
//	offset  size  field
//	0       2     options: magic number, endianness, checksum and table bits
//	2       1     code type (format.CodeType)
//	3       1     compression type (format.CompressionType)
//	4       4     value count
//	8       8     bit length of the encoded sequence
//	16      8     Golomb-Rice bucket size, 0 for other codes
//	24      8     xxHash64 of the packed payload, 0 when disabled
//	32      1+2n  LLRUN table: n, then (bucket, codeword length) pairs
//	...           compressed payload
//
// Blocks are self-describing: a consumer needs nothing but the bytes.
//
//	data, err := block.Encode(format.TypeGamma, gaps, block.WithCompression(format.CompressionS2))
//	...
//	gaps, err := block.Decode(data)
package block
