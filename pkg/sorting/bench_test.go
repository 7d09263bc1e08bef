package sorting

import (
	"math/rand/v2"
	"testing"
)

func benchSort(b *testing.B, sortFn func([]int), n int) {
	rng := rand.New(rand.NewPCG(42, uint64(n)))
	src := make([]int, n)
	for i := range src {
		src[i] = rng.IntN(n * 4)
	}
	buf := make([]int, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		sortFn(buf)
	}
}

func BenchmarkQuicksort512(b *testing.B)  { benchSort(b, Quicksort[int], 512) }
func BenchmarkHeapsort512(b *testing.B)   { benchSort(b, Heapsort[int], 512) }
func BenchmarkQuicksort1024(b *testing.B) { benchSort(b, Quicksort[int], 1024) }
func BenchmarkHeapsort1024(b *testing.B)  { benchSort(b, Heapsort[int], 1024) }
