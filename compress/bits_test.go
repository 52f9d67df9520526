package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagom-nlp/irse/bitseq"
	"github.com/lagom-nlp/irse/format"
)

func TestCompressBits_RoundTrip(t *testing.T) {
	inputs := map[string]bitseq.Bits{
		"empty":       "",
		"short":       "10110",
		"unary runs":  bitseq.Bits(strings.Repeat("0000001", 500)),
		"odd trailer": bitseq.Bits(strings.Repeat("1", 8*40+3)),
	}

	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		for name, bits := range inputs {
			t.Run(cType.String()+"/"+name, func(t *testing.T) {
				payload, packed, err := CompressBits(cType, bits)
				require.NoError(t, err)
				require.Len(t, packed, bitseq.PackedLen(bits.Len()))

				got, gotPacked, err := DecompressBits(cType, payload, bits.Len())
				require.NoError(t, err)
				require.Equal(t, bits, got)
				require.Equal(t, string(packed), string(gotPacked))
			})
		}
	}
}

func TestCompressBits_Errors(t *testing.T) {
	_, _, err := CompressBits(format.CompressionType(0), "01")
	require.ErrorContains(t, err, "unsupported compression type")

	_, _, err = CompressBits(format.CompressionNone, "012")
	require.ErrorIs(t, err, bitseq.ErrInvalidSymbol)

	payload, _, err := CompressBits(format.CompressionNone, "101100111")
	require.NoError(t, err)

	_, _, err = DecompressBits(format.CompressionNone, payload, 17)
	require.ErrorIs(t, err, ErrPackedLength)

	_, _, err = DecompressBits(format.CompressionNone, payload, 8)
	require.ErrorIs(t, err, ErrPackedLength)

	_, _, err = DecompressBits(format.CompressionNone, payload, -1)
	require.ErrorIs(t, err, ErrPackedLength)

	_, _, err = DecompressBits(format.CompressionZstd, []byte("not zstd"), 8)
	require.ErrorContains(t, err, "decompress Zstd payload")
}
