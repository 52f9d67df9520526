// Package huffman implements Huffman coding over string symbols and LLRUN, a
// Huffman code over the logarithmic buckets of positive integers.
//
// A Tree is trained once from symbol weights and is read-only afterwards, so
// it can be shared by concurrent readers. From a tree one can extract the
// full Codebook (symbol to codeword) or the compact Canonical form (symbols
// with their codeword lengths), and both can be turned back into a tree that
// decodes the same symbols. Trees rebuilt that way carry zero weights.
//
// Training:
//
//	tree, err := huffman.TrainCounts(map[string]uint64{"a": 5, "b": 9, "f": 45})
//	code := huffman.NewCode(tree)
//	bits, err := code.EncodeMany([]string{"f", "a", "b"})
//
// Shipping a code to a consumer only needs the canonical table:
//
//	canon := tree.Canonical()
//	rebuilt, err := huffman.FromCanonical(canon)
package huffman
