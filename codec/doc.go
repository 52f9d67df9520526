// Package codec implements reversible codes from positive integers to bit
// sequences.
//
// Every code implements Codec. Codes that work one value at a time (Unary,
// Gamma, Delta, Omega, VByte, GolombRice) also implement BitCoder and share
// the default batch operations EncodeEach and DecodeEach: a batch is the
// concatenation of the codewords of its values. Simple9 and Interpolative
// only make sense over whole sequences and reject single-value calls with
// ErrUnsupported.
//
// Decoding never reads past the codeword being decoded and reports how many
// symbols it consumed, so codewords from different codes can share a sequence.
//
// Basic usage:
//
//	bits, err := codec.NewGamma().EncodeMany([]uint64{69, 58, 1, 421, 1})
//	if err != nil {
//	    return err
//	}
//	values, err := codec.DecodeAll(codec.NewGamma(), bits)
package codec
