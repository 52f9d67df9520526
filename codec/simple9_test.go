package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagom-nlp/irse/bitseq"
)

func TestSimple9SingleValueUnsupported(t *testing.T) {
	c := NewSimple9()

	_, err := c.Encode(5)
	require.ErrorIs(t, err, ErrUnsupported)

	_, _, err = c.Decode(bitseq.MustParse("0000"))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestSimple9Layout(t *testing.T) {
	c := NewSimple9()

	bits, err := c.EncodeMany([]uint64{69, 58, 1, 421, 1})
	require.NoError(t, err)

	// 421 does not fit 7-bit fields, so the first three values are flushed
	// in a 4-slot word and the rest go into a 3-slot word.
	want := "0100" + "1000101" + "0111010" + "0000001" + "0000000" +
		"0011" + "110100101" + "000000001" + "000000000"
	require.Equal(t, want, bits.String())
	require.Equal(t, 0, bits.Len()%simple9WordBits)

	got, err := DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, []uint64{69, 58, 1, 421, 1}, got)
}

func TestSimple9FullWordOfOnes(t *testing.T) {
	c := NewSimple9()

	values := make([]uint64, 29)
	for i := range values {
		values[i] = 1
	}

	bits, err := c.EncodeMany(values)
	require.NoError(t, err)

	want := "0000" + strings.Repeat("1", 28) + "0000" + "1" + strings.Repeat("0", 27)
	require.Equal(t, want, bits.String())

	got, err := DecodeAll(c, bits)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestSimple9RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []uint64
	}{
		{"empty", nil},
		{"single max", []uint64{MaxSimple9Value}},
		{"mixed widths", []uint64{1, 3, 7, 15, 31, 127, 511, 16383, MaxSimple9Value, 2, 1}},
		{"ascending", func() []uint64 {
			out := make([]uint64, 100)
			for i := range out {
				out[i] = uint64(i + 1)
			}
			return out
		}()},
		{"wide then narrow", []uint64{1 << 20, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}

	c := NewSimple9()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := c.EncodeMany(tt.values)
			require.NoError(t, err)
			require.Equal(t, 0, bits.Len()%simple9WordBits)

			got, err := DecodeAll(c, bits)
			require.NoError(t, err)
			if len(tt.values) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.values, got)
		})
	}
}

func TestSimple9Errors(t *testing.T) {
	c := NewSimple9()

	_, err := c.EncodeMany([]uint64{1, 0})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = c.EncodeMany([]uint64{MaxSimple9Value + 1})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = DecodeAll(c, bitseq.Bits("0110"+strings.Repeat("0", 28)))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = DecodeAll(c, bitseq.Bits("0000"+strings.Repeat("1", 20)))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestSimple9SlotsFor(t *testing.T) {
	tests := []struct {
		value uint64
		slots int
	}{
		{1, 28},
		{2, 14},
		{3, 14},
		{4, 9},
		{7, 9},
		{8, 7},
		{15, 7},
		{16, 5},
		{31, 5},
		{127, 4},
		{128, 3},
		{511, 3},
		{512, 2},
		{16383, 2},
		{16384, 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.slots, simple9SlotsFor(tt.value), "value %d", tt.value)
	}
}
