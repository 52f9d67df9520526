package huffman

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagom-nlp/irse/codec"
)

var llrunCorpus = []uint64{
	1, 2, 3, 54, 50, 10, 20, 40, 50, 60, 40, 4, 5, 7, 545, 7, 54, 754, 8, 4, 54, 2, 45, 755, 57, 154,
}

func TestBucket(t *testing.T) {
	tests := []struct {
		n      uint64
		bucket int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{7, 2},
		{8, 3},
		{754, 9},
		{math.MaxUint64, 63},
	}

	for _, tt := range tests {
		require.Equal(t, tt.bucket, Bucket(tt.n), "n=%d", tt.n)
	}
}

func TestLLRUNRoundTrip(t *testing.T) {
	l, err := TrainLLRUN(llrunCorpus)
	require.NoError(t, err)

	// Buckets 6 and 8 are empty but still present.
	require.Equal(t, 10, l.Tree().Leaves())

	for _, n := range llrunCorpus {
		bits, err := l.Encode(n)
		require.NoError(t, err)

		got, consumed, err := l.Decode(bits)
		require.NoError(t, err)
		require.Equal(t, n, got)
		require.Equal(t, bits.Len(), consumed)
	}

	bits, err := l.EncodeMany(llrunCorpus)
	require.NoError(t, err)

	got, err := codec.DecodeAll(l, bits)
	require.NoError(t, err)
	require.Equal(t, llrunCorpus, got)
}

func TestLLRUNUnseenValuesInKnownBuckets(t *testing.T) {
	l, err := TrainLLRUN(llrunCorpus)
	require.NoError(t, err)

	values := []uint64{64, 100, 127, 256, 511, 1023}
	bits, err := l.EncodeMany(values)
	require.NoError(t, err)

	got, err := codec.DecodeAll(l, bits)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestLLRUNCodewords(t *testing.T) {
	l, err := TrainLLRUN([]uint64{1, 2, 3})
	require.NoError(t, err)

	bits, err := l.EncodeMany([]uint64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "0"+"10"+"11", bits.String())
}

func TestLLRUNOnlyOnes(t *testing.T) {
	l, err := TrainLLRUN([]uint64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 2, l.Tree().Leaves())

	bits, err := l.Encode(1)
	require.NoError(t, err)
	require.Equal(t, "1", bits.String())

	got, err := codec.DecodeAll(l, "111")
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 1, 1}, got)
}

func TestLLRUNFromCanonical(t *testing.T) {
	l, err := TrainLLRUN(llrunCorpus)
	require.NoError(t, err)

	rebuilt, err := NewLLRUNFromCanonical(l.Canonical())
	require.NoError(t, err)
	require.Equal(t, l.Canonical(), rebuilt.Canonical())

	bits, err := rebuilt.EncodeMany(llrunCorpus)
	require.NoError(t, err)

	got, err := codec.DecodeAll(rebuilt, bits)
	require.NoError(t, err)
	require.Equal(t, llrunCorpus, got)
}

func TestLLRUNDecodeEdges(t *testing.T) {
	l, err := TrainLLRUN([]uint64{1, 2, 3})
	require.NoError(t, err)

	value, consumed, err := l.Decode("")
	require.NoError(t, err)
	require.Equal(t, uint64(0), value)
	require.Equal(t, 0, consumed)

	// Bucket 1 needs one offset bit.
	_, _, err = l.Decode("1")
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestLLRUNErrors(t *testing.T) {
	_, err := TrainLLRUN(nil)
	require.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = TrainLLRUN([]uint64{4, 0})
	require.ErrorIs(t, err, ErrNonPositive)

	l, err := TrainLLRUN([]uint64{1, 2, 3})
	require.NoError(t, err)

	_, err = l.Encode(0)
	require.ErrorIs(t, err, codec.ErrOutOfRange)

	_, err = l.Encode(8)
	require.ErrorIs(t, err, ErrUnknownSymbol)

	tree, err := TrainCounts(map[string]uint64{"x": 1, "1": 2})
	require.NoError(t, err)
	_, err = NewLLRUN(tree)
	require.ErrorIs(t, err, ErrInvalidBucket)

	tree, err = TrainCounts(map[string]uint64{"01": 1, "1": 2})
	require.NoError(t, err)
	_, err = NewLLRUN(tree)
	require.ErrorIs(t, err, ErrInvalidBucket)
}

func BenchmarkLLRUNEncodeMany(b *testing.B) {
	l, err := TrainLLRUN(llrunCorpus)
	if err != nil {
		b.Fatal(err)
	}

	values := make([]uint64, 0, 4096)
	for len(values) < cap(values) {
		values = append(values, llrunCorpus...)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := l.EncodeMany(values); err != nil {
			b.Fatal(err)
		}
	}
}
