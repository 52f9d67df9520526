package compress

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lagom-nlp/irse/bitseq"
)

// generateBenchmarkData packs a gamma-coded gap pattern into size bytes.
func generateBenchmarkData(size int) []byte {
	pattern := "00101" + "1" + "010" + "0001001" + "011" + "1"
	bits := strings.Repeat(pattern, size*8/len(pattern)+1)

	packed, err := bitseq.Pack(bitseq.Bits(bits))
	if err != nil {
		panic(err)
	}

	return packed[:size]
}

func formatSize(size int) string {
	if size >= 1024 {
		return fmt.Sprintf("%dKB", size/1024)
	}

	return fmt.Sprintf("%dB", size)
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for _, size := range []int{256, 4 * 1024, 64 * 1024} {
		data := generateBenchmarkData(size)

		for name, codec := range getAllCodecs() {
			b.Run(name+"/"+formatSize(size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for _, size := range []int{256, 4 * 1024, 64 * 1024} {
		data := generateBenchmarkData(size)

		for name, codec := range getAllCodecs() {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(name+"/"+formatSize(size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkZstdDecompress_Parallel(b *testing.B) {
	codec := NewZstdCompressor()
	compressed, err := codec.Compress(generateBenchmarkData(16 * 1024))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := codec.Decompress(compressed); err != nil {
				b.Fatal(err)
			}
		}
	})
}
