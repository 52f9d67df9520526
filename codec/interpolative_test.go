package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagom-nlp/irse/bitseq"
)

func TestInterpolativeSingleValueUnsupported(t *testing.T) {
	c := NewInterpolative()

	_, err := c.Encode(5)
	require.ErrorIs(t, err, ErrUnsupported)

	_, _, err = c.Decode(bitseq.MustParse("1"))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestInterpolativeLayout(t *testing.T) {
	c := NewInterpolative()
	values := []uint64{2, 9, 12, 14, 19, 21, 31, 32, 33}

	bits, err := c.EncodeMany(values)
	require.NoError(t, err)

	want := strings.Join([]string{
		"0001001",   // Gamma(9) length
		"010",       // Gamma(2) first
		"000011111", // Gamma(31) last-first
		"01101",     // 19 in [6, 29]
		"1000",      // 12 in [4, 17]
		"0110",      // 9 in [3, 11]
		"001",       // 14 in [13, 18]
		"1010",      // 31 in [21, 31]
		"0001",      // 21 in [20, 30]
	}, "")
	require.Equal(t, want, bits.String())

	got, err := DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestInterpolativeShortRuns(t *testing.T) {
	c := NewInterpolative()

	bits, err := c.EncodeMany(nil)
	require.NoError(t, err)
	require.True(t, bits.IsEmpty())

	bits, err = c.EncodeMany([]uint64{7})
	require.NoError(t, err)
	require.Equal(t, "1"+"00111", bits.String())

	got, err := DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, []uint64{7}, got)

	bits, err = c.EncodeMany([]uint64{3, 4})
	require.NoError(t, err)
	require.Equal(t, "010"+"011"+"1", bits.String())
}

func TestInterpolativeDenseRunCostsOnlyHeader(t *testing.T) {
	c := NewInterpolative()

	values := make([]uint64, 50)
	for i := range values {
		values[i] = uint64(i + 10)
	}

	bits, err := c.EncodeMany(values)
	require.NoError(t, err)

	header, err := NewGamma().EncodeMany([]uint64{50, 10, 49})
	require.NoError(t, err)
	require.Equal(t, header, bits)

	got, err := DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestInterpolativeConcatenatedRuns(t *testing.T) {
	c := NewInterpolative()

	b := bitseq.NewBuilder()
	defer b.Finish()
	require.NoError(t, c.AppendRun(b, []uint64{2, 9, 12}))
	require.NoError(t, c.AppendRun(b, []uint64{5}))
	require.NoError(t, c.AppendRun(b, []uint64{1, 100, 1000, 1001}))

	got, err := DecodeAll(c, b.Bits())
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 9, 12, 5, 1, 100, 1000, 1001}, got)
}

func TestInterpolativeErrors(t *testing.T) {
	c := NewInterpolative()

	_, err := c.EncodeMany([]uint64{3, 3})
	require.ErrorIs(t, err, ErrNotMonotonic)

	_, err = c.EncodeMany([]uint64{5, 4})
	require.ErrorIs(t, err, ErrNotMonotonic)

	_, err = c.EncodeMany([]uint64{0, 4})
	require.ErrorIs(t, err, ErrOutOfRange)

	// Five values cannot fit between 1 and 3.
	bad, err := NewGamma().EncodeMany([]uint64{5, 1, 2})
	require.NoError(t, err)
	_, err = DecodeAll(c, bad)
	require.ErrorIs(t, err, ErrMalformed)

	good, err := c.EncodeMany([]uint64{2, 9, 12, 14, 19})
	require.NoError(t, err)
	_, err = DecodeAll(c, good[:good.Len()-2])
	require.ErrorIs(t, err, ErrTruncated)
}

func TestInterpolativeLongInputSplitsRuns(t *testing.T) {
	c := NewInterpolative()

	values := make([]uint64, MaxInterpolativeRun+10)
	for i := range values {
		values[i] = uint64(i + 1)
	}

	bits, err := c.EncodeMany(values)
	require.NoError(t, err)
	// Two runs of consecutive ids: only the three Gamma headers of each are
	// written. 33+1+31 bits for the first run, 7+33+7 for the second.
	require.Equal(t, 112, bits.Len())

	got, err := DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestInterpolativeRejectsOversizedRun(t *testing.T) {
	c := NewInterpolative()

	header, err := NewGamma().EncodeMany([]uint64{MaxInterpolativeRun + 1, 1, MaxInterpolativeRun})
	require.NoError(t, err)

	_, err = DecodeAll(c, header)
	require.ErrorIs(t, err, ErrMalformed)

	b := bitseq.NewBuilder()
	defer b.Finish()
	err = c.AppendRun(b, make([]uint64, MaxInterpolativeRun+1))
	require.ErrorIs(t, err, ErrOutOfRange)
}
