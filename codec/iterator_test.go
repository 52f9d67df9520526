package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagom-nlp/irse/bitseq"
)

func TestIteratorYieldsBeforeError(t *testing.T) {
	// Gamma(1), Gamma(2), then a truncated codeword.
	it := NewGamma().DecodeMany(bitseq.MustParse("1" + "010" + "00"))

	var got []uint64
	for it.Next() {
		got = append(got, it.Value())
	}

	require.Equal(t, []uint64{1, 2}, got)
	require.ErrorIs(t, it.Err(), ErrTruncated)
	require.Contains(t, it.Err().Error(), "decode at bit 4")
	require.False(t, it.Next())
}

func TestIteratorIsRestartable(t *testing.T) {
	c := NewDelta()
	bits, err := c.EncodeMany([]uint64{3, 1, 4, 1, 5})
	require.NoError(t, err)

	first, err := c.DecodeMany(bits).Collect()
	require.NoError(t, err)

	second, err := c.DecodeMany(bits).Collect()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestIteratorAllStopsEarly(t *testing.T) {
	c := NewVByte()
	bits, err := c.EncodeMany([]uint64{10, 20, 30, 40})
	require.NoError(t, err)

	it := c.DecodeMany(bits)
	var got []uint64
	for v := range it.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []uint64{10, 20}, got)
	require.Equal(t, 16, it.Pos())

	require.True(t, it.Next())
	require.Equal(t, uint64(30), it.Value())
}

func TestIteratorNoProgress(t *testing.T) {
	it := NewIterator(bitseq.MustParse("01"), func(_ *bitseq.Reader, out []uint64) ([]uint64, error) {
		return append(out, 1), nil
	})

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), ErrNoProgress)
}

func TestIteratorEmptyInput(t *testing.T) {
	it := NewOmega().DecodeMany("")
	require.False(t, it.Next())
	require.NoError(t, it.Err())
	require.Equal(t, 0, it.Pos())
}

// valueOnly hides the BitCoder methods so the generic path is used.
type valueOnly struct {
	c Codec
}

func (v valueOnly) Encode(value uint64) (bitseq.Bits, error) { return v.c.Encode(value) }

func (v valueOnly) Decode(bits bitseq.Bits) (uint64, int, error) { return v.c.Decode(bits) }

func TestDefaultBatchWithoutBitCoder(t *testing.T) {
	values := []uint64{69, 58, 1, 421, 1}
	c := valueOnly{c: NewGamma()}

	bits, err := EncodeEach(c, values)
	require.NoError(t, err)

	direct, err := NewGamma().EncodeMany(values)
	require.NoError(t, err)
	require.Equal(t, direct, bits)

	got, err := DecodeEach(c, bits).Collect()
	require.NoError(t, err)
	require.Equal(t, values, got)
}
