package bitseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Append(t *testing.T) {
	b := NewBuilder()
	defer b.Finish()

	b.AppendZeros(3)
	b.AppendOne()
	require.Equal(t, Bits("0001"), b.Bits())

	b.AppendUint(1, 2)
	b.AppendBinary(6)
	b.AppendBit(false)
	b.AppendBit(true)
	b.AppendOnes(2)
	b.AppendZero()
	b.Append("10")

	require.Equal(t, Bits("0001"+"01"+"110"+"01"+"11"+"0"+"10"), b.Bits())
	require.Equal(t, 16, b.Len())
}

func TestBuilder_ZeroWidth(t *testing.T) {
	b := NewBuilder()
	defer b.Finish()

	b.AppendUint(7, 0)
	b.AppendZeros(0)
	b.AppendOnes(-1)
	require.Equal(t, 0, b.Len())
}

func TestBuilder_BitsIsCopy(t *testing.T) {
	b := NewBuilder()
	defer b.Finish()

	b.AppendOne()
	snapshot := b.Bits()
	b.Reset()
	b.AppendZero()

	require.Equal(t, Bits("1"), snapshot)
	require.Equal(t, Bits("0"), b.Bits())
}

func TestBuilder_LargeRun(t *testing.T) {
	b := NewBuilder()
	defer b.Finish()

	b.AppendZeros(100000)
	b.AppendOne()
	require.Equal(t, 100001, b.Len())
	require.Equal(t, One, b.Bits()[100000])
}

func TestBuilder_PanicsAfterFinish(t *testing.T) {
	b := NewBuilder()
	b.Finish()
	b.Finish() // idempotent

	require.Panics(t, func() { b.AppendOne() })
	require.Panics(t, func() { b.AppendZeros(2) })
	require.Panics(t, func() { b.Bits() })
}
