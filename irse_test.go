package irse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagom-nlp/irse/block"
	"github.com/lagom-nlp/irse/codec"
	"github.com/lagom-nlp/irse/format"
	"github.com/lagom-nlp/irse/huffman"
)

var testIDs = []uint64{3, 7, 8, 17, 33, 34, 35, 90, 91, 512, 513, 1024}

func codecOptions(code format.CodeType) []CodecOption {
	switch code {
	case format.TypeGolombRice:
		return []CodecOption{WithBucketSize(16)}
	case format.TypeLLRUN:
		return []CodecOption{WithTrainingCorpus([]uint64{1, 2, 4, 9, 17, 55, 300, 600})}
	default:
		return nil
	}
}

func TestNewCodec(t *testing.T) {
	gaps, err := ToGaps(testIDs)
	require.NoError(t, err)

	for _, code := range format.CodeTypes {
		t.Run(code.String(), func(t *testing.T) {
			c, err := NewCodec(code, codecOptions(code)...)
			require.NoError(t, err)

			values := gaps
			if code == format.TypeInterpolative {
				values = testIDs
			}

			bits, err := c.EncodeMany(values)
			require.NoError(t, err)

			got, err := codec.DecodeAll(c, bits)
			require.NoError(t, err)
			require.Equal(t, values, got)
		})
	}
}

func TestNewCodecErrors(t *testing.T) {
	_, err := NewCodec(format.CodeType(0))
	require.ErrorContains(t, err, "invalid code type")

	_, err = NewCodec(format.TypeGolombRice)
	require.ErrorIs(t, err, codec.ErrInvalidBucketSize)

	_, err = NewCodec(format.TypeGolombRice, WithBucketSize(0))
	require.ErrorContains(t, err, "invalid bucket size")

	_, err = NewCodec(format.TypeGamma, WithBucketSize(4))
	require.ErrorContains(t, err, "only applies")

	_, err = NewCodec(format.TypeLLRUN)
	require.ErrorContains(t, err, "WithTrainingCorpus")

	_, err = NewCodec(format.TypeLLRUN, WithTrainingCorpus(nil))
	require.ErrorIs(t, err, huffman.ErrEmptyCorpus)

	_, err = NewCodec(format.TypeLLRUN, WithTrainingCorpus([]uint64{1, 0}))
	require.ErrorIs(t, err, huffman.ErrNonPositive)

	_, err = NewCodec(format.TypeVByte, WithTrainingCorpus([]uint64{1}))
	require.ErrorContains(t, err, "only applies")

	_, err = NewCodec(format.TypeLLRUN, WithCanonical(huffman.Canonical{
		Symbols: []string{"0", "1"},
		Lengths: []int{1},
	}))
	require.ErrorIs(t, err, huffman.ErrInvalidCanonical)
}

func TestNewCodecCanonical(t *testing.T) {
	corpus := []uint64{1, 1, 1, 2, 3, 5, 8, 13, 21, 34}

	trained, err := huffman.TrainLLRUN(corpus)
	require.NoError(t, err)

	c, err := NewCodec(format.TypeLLRUN,
		WithTrainingCorpus([]uint64{1000, 2000}),
		WithCanonical(trained.Canonical()),
	)
	require.NoError(t, err)

	rebuilt, ok := c.(*huffman.LLRUN)
	require.True(t, ok)
	require.Equal(t, trained.Canonical().Fingerprint(), rebuilt.Canonical().Fingerprint())

	bits, err := c.EncodeMany(corpus)
	require.NoError(t, err)

	got, err := codec.DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, corpus, got)
}

func TestPostingsRoundTrip(t *testing.T) {
	for _, code := range format.CodeTypes {
		t.Run(code.String(), func(t *testing.T) {
			var opts []block.EncoderOption
			if code == format.TypeGolombRice {
				opts = append(opts, block.WithBucketSize(8))
			}

			data, err := EncodePostings(code, testIDs, opts...)
			require.NoError(t, err)

			got, err := DecodePostings(data)
			require.NoError(t, err)
			require.Equal(t, testIDs, got)
		})
	}
}

func TestPostingsErrors(t *testing.T) {
	_, err := EncodePostings(format.TypeGamma, []uint64{4, 4})
	require.ErrorIs(t, err, codec.ErrNotMonotonic)

	_, err = EncodePostings(format.TypeInterpolative, []uint64{4, 2})
	require.ErrorIs(t, err, codec.ErrNotMonotonic)

	_, err = DecodePostings([]byte{1, 2, 3})
	require.ErrorIs(t, err, block.ErrInvalidHeader)
}
