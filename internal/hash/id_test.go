package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty payload", nil, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
		{"long payload", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
		})
	}

	payload := []byte{0x81, 0x40, 0x00, 0xff}
	require.Equal(t, xxhash.Sum64(payload), Checksum(payload))
}

func TestFingerprint(t *testing.T) {
	base := Fingerprint([]string{"a", "b", "c"}, []int{1, 2, 2})

	require.Equal(t, base, Fingerprint([]string{"a", "b", "c"}, []int{1, 2, 2}), "fingerprint must be deterministic")
	require.NotEqual(t, base, Fingerprint([]string{"a", "b", "c"}, []int{2, 1, 2}), "lengths participate in the fingerprint")
	require.NotEqual(t, base, Fingerprint([]string{"b", "a", "c"}, []int{1, 2, 2}), "order participates in the fingerprint")
	require.NotEqual(t,
		Fingerprint([]string{"a"}, []int{1}),
		Fingerprint([]string{"a"}, []int{257}),
		"lengths above one byte are not truncated",
	)
	require.NotEqual(t,
		Fingerprint([]string{"ab"}, []int{1}),
		Fingerprint([]string{"a", "b"}, []int{1, 1}),
	)
}
